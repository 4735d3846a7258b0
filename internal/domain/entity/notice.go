package entity

// NoticeLevel grades a user-facing notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient message for the user that accompanies an operation
// result, such as a degraded-connectivity warning on an otherwise successful save.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
}

func NewSuccessNotice(code, message string) Notice {
	return Notice{Level: NoticeSuccess, Code: code, Message: message}
}

func NewWarningNotice(code, message string) Notice {
	return Notice{Level: NoticeWarning, Code: code, Message: message}
}

func NewErrorNotice(code, message string) Notice {
	return Notice{Level: NoticeError, Code: code, Message: message}
}

// Notice codes and messages.
const (
	NoticeCodeProfileUpdated = "PROFILE_UPDATED"
	NoticeCodeSyncDegraded   = "SYNC_DEGRADED"
	NoticeCodeLoadOffline    = "PROFILE_LOAD_OFFLINE"
	NoticeCodeLoadFailed     = "PROFILE_LOAD_FAILED"
	NoticeCodeAccountCreated = "ACCOUNT_CREATED"
	NoticeCodeSignedIn       = "SIGNED_IN"
	NoticeCodeAccountDeleted = "ACCOUNT_DELETED"
	NoticeCodeContactSent    = "CONTACT_SENT"

	NoticeMsgProfileUpdated = "Profile updated successfully!"
	NoticeMsgSyncDegraded   = "Some features may be limited due to database connection issues."
	NoticeMsgLoadOffline    = "You are offline. Some features may be limited."
	NoticeMsgLoadFailed     = "Failed to load user profile."
	NoticeMsgAccountCreated = "Account created successfully! Welcome to YeloCar!"
	NoticeMsgSignedIn       = "Signed in successfully!"
	NoticeMsgAccountDeleted = "Your account has been deleted."
	NoticeMsgContactSent    = "Thank you! We'll get back to you soon."
)
