package livedata

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
)

// Redis keys written by the capture pipeline and read here. Absence of a
// key is a normal state, not an error.
const (
	keyWeather = "timelapse:weather"
	keyFrame   = "timelapse:frame"
	keyDay     = "timelapse:day"
	keyName    = "timelapse:name"
)

const readTimeout = 2 * time.Second

// Source is the live DataSource for preview mode, backed by the Redis
// instance the capture pipeline publishes into.
type Source struct {
	rdb *redis.Client
}

func NewSource(rdb *redis.Client) *Source {
	return &Source{rdb: rdb}
}

func (s *Source) Now() time.Time { return time.Now() }

func (s *Source) Weather() (overlay.WeatherReading, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	raw, err := s.rdb.Get(ctx, keyWeather).Result()
	if err == redis.Nil {
		return overlay.WeatherReading{}, false
	}
	if err != nil {
		log.Printf("livedata: weather read failed: %v", err)
		return overlay.WeatherReading{}, false
	}
	var reading overlay.WeatherReading
	if err := json.Unmarshal([]byte(raw), &reading); err != nil {
		log.Printf("livedata: bad weather payload: %v", err)
		return overlay.WeatherReading{}, false
	}
	return reading, true
}

func (s *Source) FrameNumber() (int, bool) { return s.intKey(keyFrame) }

func (s *Source) DayNumber() (int, bool) { return s.intKey(keyDay) }

func (s *Source) TimelapseName() (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	name, err := s.rdb.Get(ctx, keyName).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("livedata: name read failed: %v", err)
		return "", false
	}
	return name, true
}

func (s *Source) intKey(key string) (int, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	n, err := s.rdb.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		log.Printf("livedata: %s read failed: %v", key, err)
		return 0, false
	}
	return n, true
}

// Snapshot is the live state pushed to preview clients.
type Snapshot struct {
	Frame      int                     `json:"frame,omitempty"`
	Day        int                     `json:"day,omitempty"`
	Name       string                  `json:"name,omitempty"`
	Weather    *overlay.WeatherReading `json:"weather,omitempty"`
	CapturedAt time.Time               `json:"captured_at"`
}

// Snapshot gathers the current readings for a websocket broadcast.
func (s *Source) Snapshot() Snapshot {
	snap := Snapshot{CapturedAt: time.Now().UTC()}
	if n, ok := s.FrameNumber(); ok {
		snap.Frame = n
	}
	if n, ok := s.DayNumber(); ok {
		snap.Day = n
	}
	if name, ok := s.TimelapseName(); ok {
		snap.Name = name
	}
	if w, ok := s.Weather(); ok {
		snap.Weather = &w
	}
	return snap
}
