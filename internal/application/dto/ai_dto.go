package dto

// DiagnosisDraftRequest cuerpo de POST /api/ai/diagnosis-draft.
type DiagnosisDraftRequest struct {
	Symptoms       string `json:"symptoms"`
	ClinicalNotes  string `json:"clinical_notes"`
	PatientHistory string `json:"patient_history"`
}

// DiagnosisDraftDTO borrador de diagnóstico sugerido por el LLM.
// Es un apoyo para el médico; nunca se persiste sin revisión humana.
type DiagnosisDraftDTO struct {
	DraftDiagnosis  string   `json:"draft_diagnosis"`
	Differentials   []string `json:"differentials"`
	SuggestedTests  []string `json:"suggested_tests"`
	ConfidenceScore float64  `json:"confidence_score"`
	Reasoning       string   `json:"reasoning"`
}

// StructureTranscriptRequest cuerpo de POST /api/ai/structure-transcript.
type StructureTranscriptRequest struct {
	Transcript string `json:"transcript"`
}

// StructuredNoteDTO nota clínica estructurada a partir de una transcripción de voz.
type StructuredNoteDTO struct {
	ChiefComplaint string `json:"chief_complaint"`
	Subjective     string `json:"subjective"`
	Objective      string `json:"objective"`
	Assessment     string `json:"assessment"`
	Plan           string `json:"plan"`
}
