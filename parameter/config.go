package parameter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/pixel-racer/constants"
)

// Config holds every gameplay tunable
// Fields absent from a loaded file keep their defaults
type Config struct {
	// Track
	GameWidth   float64 `json:"gameWidth" jsonschema:"title=Track width,description=Track width in world pixels,minimum=0,exclusiveMinimum=true"`
	GameHeight  float64 `json:"gameHeight" jsonschema:"title=Scene height,description=Scene height in world pixels,minimum=0,exclusiveMinimum=true"`
	LaneCount   int     `json:"laneCount" jsonschema:"title=Lane count,minimum=1"`
	LaneHeight  float64 `json:"laneHeight" jsonschema:"title=Lane height,minimum=0,exclusiveMinimum=true"`
	RoadYOffset float64 `json:"roadYOffset" jsonschema:"title=Road offset,description=Top edge of the first lane,minimum=0"`
	SpawnMargin float64 `json:"spawnMargin" jsonschema:"title=Spawn margin,description=Distance past the right edge where rows appear,minimum=0"`

	// Scroll
	SpeedStart     float64 `json:"speedStart" jsonschema:"title=Start scroll speed,minimum=0,exclusiveMinimum=true"`
	SpeedIncrement float64 `json:"speedIncrement" jsonschema:"title=Scroll speed increment per frame,minimum=0"`

	// Player
	PlayerWidth     float64 `json:"playerWidth" jsonschema:"minimum=0,exclusiveMinimum=true"`
	PlayerHeight    float64 `json:"playerHeight" jsonschema:"minimum=0,exclusiveMinimum=true"`
	PlayerSpeed     float64 `json:"playerSpeed" jsonschema:"minimum=0,exclusiveMinimum=true"`
	PlayerStartX    float64 `json:"playerStartX" jsonschema:"minimum=0"`
	Player1Lane     int     `json:"player1Lane" jsonschema:"minimum=0"`
	Player2Lane     int     `json:"player2Lane" jsonschema:"minimum=0"`
	BoostMultiplier float64 `json:"boostMultiplier" jsonschema:"title=Boost speed multiplier,minimum=1"`

	// Durations in frames
	JumpDuration      int     `json:"jumpDuration" jsonschema:"minimum=1"`
	JumpHeight        float64 `json:"jumpHeight" jsonschema:"minimum=0"`
	BoostDuration     int     `json:"boostDuration" jsonschema:"minimum=1"`
	ExplosionDuration int     `json:"explosionDuration" jsonschema:"minimum=1"`

	// Spawning
	SpawnInterval   int     `json:"spawnInterval" jsonschema:"title=Frames between rows,minimum=1"`
	HazardRowChance float64 `json:"hazardRowChance" jsonschema:"minimum=0,maximum=1"`
	ObstacleOdds    float64 `json:"obstacleOdds" jsonschema:"description=Cumulative threshold for an obstacle in a mixed row,minimum=0,maximum=1"`
	CoinOdds        float64 `json:"coinOdds" jsonschema:"description=Cumulative threshold for a coin in a mixed row,minimum=0,maximum=1"`
	BoostOdds       float64 `json:"boostOdds" jsonschema:"description=Cumulative threshold for a speed boost in a mixed row,minimum=0,maximum=1"`

	// Objects
	CoinSize       float64 `json:"coinSize" jsonschema:"minimum=0,exclusiveMinimum=true"`
	ObstacleWidth  float64 `json:"obstacleWidth" jsonschema:"minimum=0,exclusiveMinimum=true"`
	ObstacleHeight float64 `json:"obstacleHeight" jsonschema:"minimum=0,exclusiveMinimum=true"`
	RampWidth      float64 `json:"rampWidth" jsonschema:"minimum=0,exclusiveMinimum=true"`
	RampHeight     float64 `json:"rampHeight" jsonschema:"minimum=0,exclusiveMinimum=true"`
	BoostSize      float64 `json:"boostSize" jsonschema:"minimum=0,exclusiveMinimum=true"`

	CoinValue int `json:"coinValue" jsonschema:"minimum=0"`
}

// Default returns the stock tuning
func Default() Config {
	return Config{
		GameWidth:   constants.GameWidth,
		GameHeight:  constants.GameHeight,
		LaneCount:   constants.LaneCount,
		LaneHeight:  constants.LaneHeight,
		RoadYOffset: constants.RoadYOffset,
		SpawnMargin: constants.SpawnMargin,

		SpeedStart:     constants.GameSpeedStart,
		SpeedIncrement: constants.GameSpeedIncrement,

		PlayerWidth:     constants.PlayerWidth,
		PlayerHeight:    constants.PlayerHeight,
		PlayerSpeed:     constants.PlayerSpeed,
		PlayerStartX:    constants.PlayerStartX,
		Player1Lane:     constants.Player1StartLane,
		Player2Lane:     constants.Player2StartLane,
		BoostMultiplier: constants.BoostSpeedMultiplier,

		JumpDuration:      constants.JumpDuration,
		JumpHeight:        constants.JumpHeight,
		BoostDuration:     constants.BoostDuration,
		ExplosionDuration: constants.ExplosionDuration,

		SpawnInterval:   constants.SpawnInterval,
		HazardRowChance: constants.HazardRowChance,
		ObstacleOdds:    constants.MixedObstacleThreshold,
		CoinOdds:        constants.MixedCoinThreshold,
		BoostOdds:       constants.MixedBoostThreshold,

		CoinSize:       constants.CoinSize,
		ObstacleWidth:  constants.ObstacleWidth,
		ObstacleHeight: constants.ObstacleHeight,
		RampWidth:      constants.RampWidth,
		RampHeight:     constants.RampHeight,
		BoostSize:      constants.BoostObjectSize,

		CoinValue: constants.CoinValue,
	}
}

// Load reads a JSON tuning file on top of the defaults
// An empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	// Unknown keys are rejected, matching the published schema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every field outside its allowed range
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %v", name, v))
		}
	}

	positive("gameWidth", c.GameWidth)
	positive("gameHeight", c.GameHeight)
	positive("laneHeight", c.LaneHeight)
	positive("speedStart", c.SpeedStart)
	positive("playerWidth", c.PlayerWidth)
	positive("playerHeight", c.PlayerHeight)
	positive("playerSpeed", c.PlayerSpeed)
	positive("coinSize", c.CoinSize)
	positive("obstacleWidth", c.ObstacleWidth)
	positive("obstacleHeight", c.ObstacleHeight)
	positive("rampWidth", c.RampWidth)
	positive("rampHeight", c.RampHeight)
	positive("boostSize", c.BoostSize)

	if c.LaneCount < 1 {
		errs = append(errs, fmt.Errorf("laneCount must be at least 1, got %d", c.LaneCount))
	}
	if c.Player1Lane < 0 || c.Player1Lane >= c.LaneCount {
		errs = append(errs, fmt.Errorf("player1Lane %d outside [0,%d)", c.Player1Lane, c.LaneCount))
	}
	if c.Player2Lane < 0 || c.Player2Lane >= c.LaneCount {
		errs = append(errs, fmt.Errorf("player2Lane %d outside [0,%d)", c.Player2Lane, c.LaneCount))
	}
	if c.PlayerWidth > c.GameWidth {
		errs = append(errs, fmt.Errorf("playerWidth %v exceeds gameWidth %v", c.PlayerWidth, c.GameWidth))
	}
	if c.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("speedIncrement must not be negative, got %v", c.SpeedIncrement))
	}
	if c.BoostMultiplier < 1 {
		errs = append(errs, fmt.Errorf("boostMultiplier must be at least 1, got %v", c.BoostMultiplier))
	}
	if c.JumpDuration < 1 || c.BoostDuration < 1 || c.ExplosionDuration < 1 || c.SpawnInterval < 1 {
		errs = append(errs, errors.New("durations and spawnInterval must be at least one frame"))
	}
	if c.CoinValue < 0 {
		errs = append(errs, fmt.Errorf("coinValue must not be negative, got %d", c.CoinValue))
	}

	probability("hazardRowChance", c.HazardRowChance)
	probability("obstacleOdds", c.ObstacleOdds)
	probability("coinOdds", c.CoinOdds)
	probability("boostOdds", c.BoostOdds)
	if c.ObstacleOdds > c.CoinOdds || c.CoinOdds > c.BoostOdds {
		errs = append(errs, errors.New("mixed row odds must be cumulative: obstacleOdds <= coinOdds <= boostOdds"))
	}

	return errors.Join(errs...)
}

// LaneCenterY returns the vertical center of a lane
func (c Config) LaneCenterY(lane int) float64 {
	return c.RoadYOffset + float64(lane)*c.LaneHeight + c.LaneHeight/2
}

// RoadHeight returns the combined height of all lanes
func (c Config) RoadHeight() float64 {
	return float64(c.LaneCount) * c.LaneHeight
}
