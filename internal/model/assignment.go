package model

// Assignment is a compiled-in capstone coursework record. Assignments
// are read-only: nothing creates, mutates, or deletes them at runtime.
type Assignment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ModifiedTime string `json:"modified_time"`
	PDFPath      string `json:"pdf_path"`
	Type         string `json:"type"`
	Size         string `json:"size,omitempty"`
	Completed    bool   `json:"completed"`
}
