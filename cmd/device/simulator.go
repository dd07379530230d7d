package device

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Simulator stands in for the cabin device during development. Temperature
// drifts slowly around a base value and rises while the buzzer is off.
type Simulator struct {
	mu       sync.Mutex
	base     Reading
	buzzerOn bool
	started  time.Time
	rng      *rand.Rand
	failNext int
}

func NewSimulator(base Reading) *Simulator {
	return &Simulator{
		base:    base,
		started: time.Now(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Reading returns the current simulated sample.
func (s *Simulator) Reading() Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	minutes := time.Since(s.started).Minutes()
	drift := math.Sin(minutes/10) * 1.5
	if s.buzzerOn {
		drift -= 2
	}
	noise := (s.rng.Float64() - 0.5) * 0.2

	humidity := s.base.HumidityPct + drift*2 + noise
	humidity = math.Max(0, math.Min(100, humidity))
	return Reading{
		TemperatureC: round1(s.base.TemperatureC + drift + noise),
		HumidityPct:  round1(humidity),
	}
}

// BuzzerOn reports the simulated buzzer state.
func (s *Simulator) BuzzerOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buzzerOn
}

// FailNext makes the next n requests answer 503.
func (s *Simulator) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

func (s *Simulator) setBuzzer(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buzzerOn = on
}

func (s *Simulator) shouldFail() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext > 0 {
		s.failNext--
		return true
	}
	return false
}

// App wires the device endpoints into a fiber app. withLogger enables the
// fiber request logger.
func (s *Simulator) App(withLogger bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cabinwatch-simulator",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})

	if withLogger {
		app.Use(logger.New())
	}
	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		if s.shouldFail() {
			return fiber.NewError(fiber.StatusServiceUnavailable, "simulated failure")
		}
		return c.Next()
	})

	app.Get("/sensor", func(c *fiber.Ctx) error {
		return c.JSON(s.Reading())
	})
	app.Get("/buzzer/on", func(c *fiber.Ctx) error {
		s.setBuzzer(true)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/buzzer/off", func(c *fiber.Ctx) error {
		s.setBuzzer(false)
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
