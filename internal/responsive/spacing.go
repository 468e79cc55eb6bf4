package responsive

// Spacing is the moderate-scaled spacing scale, in design points.
type Spacing struct {
	XS  float64
	SM  float64
	MD  float64
	LG  float64
	XL  float64
	XXL float64
}

// Nominal spacing tokens before scaling.
const (
	spaceXS  = 4
	spaceSM  = 8
	spaceMD  = 16
	spaceLG  = 24
	spaceXL  = 32
	spaceXXL = 48
)

// Spacing returns the spacing tokens moderated for the current metrics.
func (s Scaler) Spacing() Spacing {
	return Spacing{
		XS:  s.ModerateScaleDefault(spaceXS),
		SM:  s.ModerateScaleDefault(spaceSM),
		MD:  s.ModerateScaleDefault(spaceMD),
		LG:  s.ModerateScaleDefault(spaceLG),
		XL:  s.ModerateScaleDefault(spaceXL),
		XXL: s.ModerateScaleDefault(spaceXXL),
	}
}
