package smogon

// The catalog URL scheme addresses generations by two-letter game codes.
var genToCode = map[string]string{
	"gen1": "rb",
	"gen2": "gs",
	"gen3": "rs",
	"gen4": "dp",
	"gen5": "bw",
	"gen6": "xy",
	"gen7": "sm",
	"gen8": "ss",
	"gen9": "sv",
}

// newestFirst is the probe order for LatestGeneration.
var newestFirst = []string{"sv", "ss", "sm", "xy", "bw", "dp", "rs", "gs", "rb"}

// NormalizeGeneration accepts either the genN form or the two-letter code
// and returns the code form.
func NormalizeGeneration(generation string) (string, bool) {
	if code, ok := genToCode[generation]; ok {
		return code, true
	}
	for _, code := range genToCode {
		if code == generation {
			return code, true
		}
	}
	return "", false
}

// GenerationName returns the genN form for a code.
func GenerationName(code string) (string, bool) {
	for name, c := range genToCode {
		if c == code {
			return name, true
		}
	}
	return "", false
}
