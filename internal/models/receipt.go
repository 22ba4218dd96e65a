package models

// ReceiptUpload is a bet-slip image queued for upload. Data is carried inline
// so a queued upload survives restarts along with the rest of the queue.
type ReceiptUpload struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
	BetID       string `json:"betId,omitempty"`
}

// UploadResult is the server's acknowledgement of a stored receipt.
type UploadResult struct {
	ReceiptID string `json:"receiptId"`
	URL       string `json:"url,omitempty"`
	Status    string `json:"status"`
}
