package gateway

//ConfigErr means the gateway credentials are missing. It is fatal and
//reported before any network attempt.
type ConfigErr struct {
	message string
}

func (e *ConfigErr) Error() string {
	return e.message
}

func NewConfigError(msg string) *ConfigErr {
	return &ConfigErr{message: msg}
}

//InvalidPhoneErr means the destination number failed validation, no network
//call was made
type InvalidPhoneErr struct {
	message string
}

func (e *InvalidPhoneErr) Error() string {
	return e.message
}

func NewInvalidPhoneError(msg string) *InvalidPhoneErr {
	return &InvalidPhoneErr{message: msg}
}

//SendErr carries the human readable reason a delivery failed, whether the
//gateway rejected it or the transport broke
type SendErr struct {
	message string
}

func (e *SendErr) Error() string {
	return e.message
}

func NewSendError(msg string) *SendErr {
	return &SendErr{message: msg}
}
