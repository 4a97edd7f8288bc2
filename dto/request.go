package dto

import "mime/multipart"

// TopAmountsRequest carries an already extracted table.
type TopAmountsRequest struct {
	Table Table `json:"table"`
}

// Validate performs basic validation on the request. A table with no rows is
// valid and simply ranks to an empty result.
func (r *TopAmountsRequest) Validate() error {
	if r.Table == nil {
		return ErrMissingTable
	}
	return nil
}

// ExtractRequest is a statement document to run through table extraction.
type ExtractRequest struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	Password string                `form:"password"`
}
