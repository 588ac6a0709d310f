package color

import (
	"fmt"
	"strconv"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

// RGB holds channel values in [0,1].
type RGB struct {
	Red, Green, Blue float64
}

// Convert turns a six-digit hex string into channel values.
func Convert(hex string) (RGB, error) {
	if len(hex) != 6 {
		return RGB{}, errors.NewWithDetails(errors.EValidation, "hex must have 6 digits: "+hex,
			map[string]string{"hex": hex})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, errors.WrapWithDetails(errors.EValidation, "hex is not base-16: "+hex, err,
			map[string]string{"hex": hex})
	}
	return RGB{
		Red:   float64((v>>16)&0xFF) / 255,
		Green: float64((v>>8)&0xFF) / 255,
		Blue:  float64(v&0xFF) / 255,
	}, nil
}

// Components returns red, green and blue formatted to three decimals.
func (c RGB) Components() (red, green, blue string) {
	return channel(c.Red), channel(c.Green), channel(c.Blue)
}

func channel(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
