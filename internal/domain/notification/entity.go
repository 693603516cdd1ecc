package notification

// ToastType classifies a toast notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastWarning ToastType = "warning"
	ToastError   ToastType = "error"
)

// Toast is the notification shape the UI renders.
type Toast struct {
	Type        ToastType `json:"toast_type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Open        bool      `json:"open"`
}

func NewSuccessToast(title, description string) Toast {
	return Toast{Type: ToastSuccess, Title: title, Description: description, Open: true}
}

func NewWarningToast(title, description string) Toast {
	return Toast{Type: ToastWarning, Title: title, Description: description, Open: true}
}

func NewErrorToast(title, description string) Toast {
	return Toast{Type: ToastError, Title: title, Description: description, Open: true}
}
