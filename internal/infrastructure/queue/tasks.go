package queue

// Task types known to the worker.
const (
	TaskSendEmail = "send_email"
)

// EmailPayload is the payload of a send_email task. Template names a file in
// the mail template directory; Data is passed to the template as-is.
type EmailPayload struct {
	Recipient string                 `json:"recipient"`
	Subject   string                 `json:"subject"`
	Template  string                 `json:"templateName"`
	Data      map[string]interface{} `json:"templateData,omitempty"`
}
