package pdf

import _ "embed"

// DejaVu Sans covers the Latin and Arabic ranges the label fields carry.
//
//go:embed fonts/DejaVuSans.ttf
var dejaVuSansFont []byte
