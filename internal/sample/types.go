package sample

import "time"

// FocusArea categorizes the activity domain of a ground-truth sample.
type FocusArea string

const (
	FocusCoding        FocusArea = "coding"
	FocusWriting       FocusArea = "writing"
	FocusResearch      FocusArea = "research"
	FocusCommunication FocusArea = "communication"
	FocusDesign        FocusArea = "design"
	FocusOther         FocusArea = "other"
)

// FocusAreas lists every known focus area in canonical order.
func FocusAreas() []FocusArea {
	return []FocusArea{
		FocusCoding,
		FocusWriting,
		FocusResearch,
		FocusCommunication,
		FocusDesign,
		FocusOther,
	}
}

// KnownFocusArea reports whether area is one of the canonical categories.
func KnownFocusArea(area FocusArea) bool {
	switch area {
	case FocusCoding, FocusWriting, FocusResearch, FocusCommunication, FocusDesign, FocusOther:
		return true
	default:
		return false
	}
}

// Sample is one human- or bootstrap-annotated ground-truth example.
// Records are never mutated; a correction is a new record with a new ID, or a
// re-annotation that shares the sample ID (used for agreement analysis).
type Sample struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	AppName       string    `json:"app_name"`
	WindowTitle   string    `json:"window_title,omitempty"`
	UserFocus     string    `json:"user_focus"`
	IsValid       bool      `json:"is_valid"`
	Confidence    float64   `json:"confidence"`
	FocusArea     FocusArea `json:"focus_area"`
	AnnotatorID   string    `json:"annotator_id"`
	AnnotatedAt   time.Time `json:"annotated_at"`
	OCRConfidence *float64  `json:"ocr_confidence,omitempty"`
	EvidencePath  string    `json:"evidence_path,omitempty"`
	Note          string    `json:"note,omitempty"`
}

// Prediction is the predictor's output for one sample. Category and Summary
// are descriptive only; the metrics engine reads IsValid and Confidence.
type Prediction struct {
	IsValid    bool    `json:"is_valid"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category,omitempty"`
	Summary    string  `json:"summary,omitempty"`
}
