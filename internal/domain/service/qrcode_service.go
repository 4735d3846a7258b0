package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code pointing at the public page of a listing
	GenerateListingQR(entryID int) ([]byte, error)

	// ListingURL returns the public URL encoded in a listing QR code
	ListingURL(entryID int) string
}
