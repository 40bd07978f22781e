package domain

// TransactionFilter narrows ledger history queries.
// A nil Type means both EARN and SPEND entries.
type TransactionFilter struct {
	Type   *TransactionType
	Limit  int
	Offset int
}
