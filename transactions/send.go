package transactions

import (
	"encoding/json"

	"github.com/defistate/soroswap-client-go/amount"
)

// SendRequest is the body of a submission. Launchtube selects the alternative
// submission channel and is always sent, false included.
type SendRequest struct {
	XDR        string `json:"xdr"`
	Launchtube bool   `json:"launchtube"`
}

// ExecutingProtocol names the contract family that executed a transaction.
type ExecutingProtocol string

const (
	ProtocolRouter     ExecutingProtocol = "router"
	ProtocolAggregator ExecutingProtocol = "aggregator"
	ProtocolSDEX       ExecutingProtocol = "sdex"
	ProtocolUnknown    ExecutingProtocol = "unknown"
)

type SubmissionMethod string

const (
	SubmissionSoroban    SubmissionMethod = "soroban"
	SubmissionHorizon    SubmissionMethod = "horizon"
	SubmissionLaunchtube SubmissionMethod = "launchtube"
)

type SendTransactionResponse struct {
	TxHash  string `json:"txHash"`
	Success bool   `json:"success"`

	// Result is nil when the service could not attribute an outcome.
	Result Result `json:"result"`

	Ledger                uint64            `json:"ledger"`
	CreatedAt             string            `json:"createdAt"`
	LatestLedger          uint64            `json:"latestLedger"`
	LatestLedgerCloseTime string            `json:"latestLedgerCloseTime"`
	FeeBump               bool              `json:"feeBump"`
	FeeCharged            amount.Amount     `json:"feeCharged"`
	Protocol              ExecutingProtocol `json:"protocol"`
	SubmissionMethod      SubmissionMethod  `json:"submissionMethod"`
}

func (r *SendTransactionResponse) UnmarshalJSON(data []byte) error {
	type plain SendTransactionResponse
	aux := struct {
		*plain
		Result json.RawMessage `json:"result"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Result = DecodeResult(aux.Result)
	return nil
}
