package check

import (
	"fmt"
	"regexp"
	"strconv"

	"al.essio.dev/pkg/shellescape"
)

// DefaultMaxTemperature is the threshold in degrees Celsius used when
// the configuration does not set one.
const DefaultMaxTemperature = 30

// Sensor files report millidegrees as "t=42123" (1-wire style).
var temperaturePattern = regexp.MustCompile(`t=(\d+)`)

// Temperature reads a sensor file and checks the value against a
// maximum in degrees Celsius.
type Temperature struct {
	// Sensor is the path of the sensor file on the host.
	Sensor string `yaml:"sensor"`

	// Max is the highest acceptable temperature in °C.
	// Zero means DefaultMaxTemperature.
	Max int `yaml:"max"`
}

// Kind returns the catalog name.
func (c *Temperature) Kind() string { return KindTemperature }

// Validate checks the sensor path and threshold.
func (c *Temperature) Validate() error {
	if c.Sensor == "" {
		return fmt.Errorf("temperature: sensor must not be empty")
	}
	if c.Max < 0 {
		return fmt.Errorf("temperature: max must not be negative, got %d", c.Max)
	}
	return nil
}

// Command reads the sensor file.
func (c *Temperature) Command() string {
	return "cat " + shellescape.Quote(c.Sensor)
}

// Parse extracts the millidegree reading and compares the converted
// value against the threshold. Unparsable output fails the check.
func (c *Temperature) Parse(out string, ok bool) Result {
	if !ok {
		return Result{
			Check:  KindTemperature,
			Status: Fail,
			Detail: fmt.Sprintf("reading sensor `%s` failed: %s", c.Sensor, snippet(out)),
		}
	}

	m := temperaturePattern.FindStringSubmatch(out)
	if m == nil {
		return Result{
			Check:  KindTemperature,
			Status: Fail,
			Detail: fmt.Sprintf("cannot read temperature from `%s`: %s", c.Sensor, snippet(out)),
		}
	}

	milli, err := strconv.Atoi(m[1])
	if err != nil {
		return Result{
			Check:  KindTemperature,
			Status: Fail,
			Detail: fmt.Sprintf("cannot parse temperature %q: %v", m[1], err),
		}
	}

	max := c.Max
	if max == 0 {
		max = DefaultMaxTemperature
	}

	celsius := milli / 1000
	status := Pass
	if celsius > max {
		status = Fail
	}
	return Result{
		Check:  KindTemperature,
		Status: status,
		Detail: fmt.Sprintf("%d°C (max %d°C)", celsius, max),
	}
}
