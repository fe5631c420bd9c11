package dto

// CreateWardRequest cuerpo de POST /api/wards. Las camas se siembran en estado
// available con numeración <prefijo>-001, <prefijo>-002, ...
type CreateWardRequest struct {
	Name        string `json:"name"`
	WardType    string `json:"ward_type"`
	TotalBeds   int    `json:"total_beds"`
	BedPrefix   string `json:"bed_prefix"`
	HeadNurseID string `json:"head_nurse_id"`
}

// WardDTO proyección JSON de un pabellón.
type WardDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	WardType      string  `json:"ward_type"`
	TotalBeds     int     `json:"total_beds"`
	AvailableBeds int     `json:"available_beds"`
	HeadNurseID   *string `json:"head_nurse_id"`
	IsActive      bool    `json:"is_active"`
}

// BedDTO proyección JSON de una cama.
type BedDTO struct {
	ID               string  `json:"id"`
	WardID           string  `json:"ward_id"`
	BedNumber        string  `json:"bed_number"`
	BedType          string  `json:"bed_type"`
	Status           string  `json:"status"`
	CurrentPatientID *string `json:"current_patient_id"`
}
