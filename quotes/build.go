package quotes

// SignAction tells the caller who has to sign the built transaction next.
type SignAction string

const SignUserTransaction SignAction = "SIGN_USER_TRANSACTION"

type BuildQuoteRequest struct {
	Quote      QuoteResponse `json:"quote"`
	From       string        `json:"from,omitempty"`
	To         string        `json:"to,omitempty"`
	ReferralID string        `json:"referralId,omitempty"`
}

type BuildQuoteResponse struct {
	XDR         string     `json:"xdr"`
	Action      SignAction `json:"action,omitempty"`
	Description string     `json:"description,omitempty"`
}
