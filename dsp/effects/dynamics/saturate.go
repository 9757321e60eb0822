package dynamics

// Saturate applies the cubic waveshaper for amount in [0, 1]:
//
//	drive = amount*0.9 + 0.1
//	y     = drive*x - drive^2/3*x^3
//	out   = clamp(y*(1 - 0.3*amount), -1, 1)
func Saturate(x, amount float64) float64 {
	return SaturateDrive(x, amount*0.9+0.1, 1-0.3*amount)
}

// SaturateDrive is Saturate with precomputed drive and output trim.
func SaturateDrive(x, drive, trim float64) float64 {
	y := drive*x - (drive*drive/3)*x*x*x
	y *= trim
	if y > 1 {
		return 1
	}
	if y < -1 {
		return -1
	}
	return y
}
