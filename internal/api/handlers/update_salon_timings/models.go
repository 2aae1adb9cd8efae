package update_salon_timings

// UpdateTimingsRequest HTTP request model
type UpdateTimingsRequest struct {
	OpeningTime string `json:"openingTime"` // "09:00"
	ClosingTime string `json:"closingTime"` // "20:00"
	WorkingDays []int  `json:"workingDays"` // 0=воскресенье .. 6=суббота
}
