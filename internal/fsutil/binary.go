package fsutil

// BinaryDetector implements binary content detection using null byte
// sampling, with special handling for UTF BOMs.
type BinaryDetector struct {
	SampleSize int // number of bytes to sample
}

// NewBinaryDetector creates a BinaryDetector with the given sample size.
func NewBinaryDetector(sampleSize int) *BinaryDetector {
	return &BinaryDetector{
		SampleSize: sampleSize,
	}
}

// IsBinaryContent checks content for null bytes within the sample window.
// UTF-16 and UTF-32 BOMs are treated as text to avoid false positives.
func (r *BinaryDetector) IsBinaryContent(content []byte) bool {
	if len(content) >= 2 {
		if (content[0] == 0xFF && content[1] == 0xFE) ||
			(content[0] == 0xFE && content[1] == 0xFF) {
			return false // UTF-16 BOM
		}
	}
	if len(content) >= 4 {
		if (content[0] == 0xFF && content[1] == 0xFE && content[2] == 0x00 && content[3] == 0x00) ||
			(content[0] == 0x00 && content[1] == 0x00 && content[2] == 0xFE && content[3] == 0xFF) {
			return false // UTF-32 BOM
		}
	}

	sampleSize := min(len(content), r.SampleSize)
	for i := 0; i < sampleSize; i++ {
		if content[i] == 0 {
			return true
		}
	}
	return false
}
