package zscale

const (
	DefaultNSamples      = 1000
	DefaultContrast      = 0.25
	DefaultMaxReject     = 0.5
	DefaultMinNPixels    = 5
	DefaultKRej          = 2.5
	DefaultMaxIterations = 5

	// rejected pixels also reject their neighbours, ngrow = max(1, K * growFraction)
	growFraction = 0.01

	// residual sigma below flatTolerance * max(|zmin|, |zmax|) is rounding noise
	flatTolerance = 1e-10
)
