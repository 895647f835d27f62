package ledger

// TransactionKind discriminates the three ways a transaction can be created.
// The kind is not stored on the record; a request is recognizable by its
// RequestStatus, a balance transfer by an empty Source with equal
// sender/receiver ids.
type TransactionKind string

const (
	KindPayment         TransactionKind = "payment"
	KindRequest         TransactionKind = "request"
	KindTransferDeposit TransactionKind = "transferDeposit"
)

// TransactionStatus is the settlement status of a transaction.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusComplete TransactionStatus = "complete"
)

// RequestStatus tracks the lifecycle of a request-type transaction.
// It is empty for payments and balance transfers.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// PrivacyLevel is the visibility scope of a transaction.
type PrivacyLevel string

const (
	PrivacyPublic   PrivacyLevel = "public"
	PrivacyContacts PrivacyLevel = "contacts"
	PrivacyPrivate  PrivacyLevel = "private"
)

// BankTransferType distinguishes movements between a user's app balance and
// their linked bank account.
type BankTransferType string

const (
	// TransferDeposit moves app balance out to the bank account.
	TransferDeposit BankTransferType = "deposit"
	// TransferWithdrawal pulls bank funds in to cover an app balance shortfall.
	TransferWithdrawal BankTransferType = "withdrawal"
)

// NotificationType classifies notifications delivered to a user.
type NotificationType string

const (
	NotifyLike            NotificationType = "like"
	NotifyComment         NotificationType = "comment"
	NotifyPayment         NotificationType = "payment"
	NotifyRequest         NotificationType = "request"
	NotifyRequestAccepted NotificationType = "requestAccepted"
)
