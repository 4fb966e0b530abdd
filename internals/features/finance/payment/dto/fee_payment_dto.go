package dto

type PayFeeRequest struct {
	// Nominal opsional; kalau kosong pakai FEE_AMOUNT dari ENV.
	Amount int64 `json:"amount" validate:"omitempty,gt=0"`
}

type PayFeeResponse struct {
	OrderID   string `json:"order_id"`
	SnapToken string `json:"snap_token"`
	Amount    int64  `json:"amount"`
}
