package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/akinwale/sms-blast/log"
	"github.com/akinwale/sms-blast/util"
)

const DefaultBaseUrl = "https://api.telerivet.com"

//Config carries the externally provided gateway credentials.
//ProjectId and ApiKey are mandatory, the rest is optional.
type Config struct {
	BaseUrl    string
	ProjectId  string
	ApiKey     string
	RouteId    string
	FromNumber string
}

//Client delivers single messages through the HTTP messaging gateway
type Client interface {
	//Send delivers text to phone and returns the gateway response payload
	Send(phone, message string) (map[string]interface{}, error)
}

func NewClient(cfg Config) (Client, error) {
	if util.IsBlank(cfg.ProjectId) || util.IsBlank(cfg.ApiKey) {
		return nil, NewConfigError("SMS service not configured. Please check environment variables.")
	}
	if util.IsBlank(cfg.BaseUrl) {
		cfg.BaseUrl = DefaultBaseUrl
	}
	return &client{cfg: cfg, httpClient: &http.Client{Timeout: 30 * time.Second}}, nil
}

type client struct {
	cfg        Config
	httpClient *http.Client
}

type payload struct {
	Content    string `json:"content"`
	ToNumber   string `json:"to_number"`
	RouteId    string `json:"route_id,omitempty"`
	FromNumber string `json:"from_number,omitempty"`
}

func (c *client) Send(phone, message string) (map[string]interface{}, error) {
	if !strings.HasPrefix(phone, "+") {
		return nil, NewInvalidPhoneError("Phone number must include country code (e.g., +234...)")
	}

	body, err := c.post(payload{Content: message, ToNumber: phone, RouteId: c.cfg.RouteId, FromNumber: c.cfg.FromNumber})
	if err == nil {
		return body, nil
	}

	//one retry without the sender identity when the gateway rejected it
	if IsSenderIdentityErr(err.Error()) && !util.IsBlank(c.cfg.FromNumber) {
		log.Info.Println("Retrying without sender id", phone)
		return c.post(payload{Content: message, ToNumber: phone, RouteId: c.cfg.RouteId})
	}

	return nil, err
}

func (c *client) post(p payload) (map[string]interface{}, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/projects/%s/messages/send", c.cfg.BaseUrl, c.cfg.ProjectId)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.ApiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewSendError(err.Error())
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewSendError(errorMessage(body, resp.StatusCode))
	}
	if decodeErr != nil {
		return nil, NewSendError("Unreadable gateway response: " + decodeErr.Error())
	}

	return body, nil
}

//errorMessage digs the human readable description out of the gateway error body
func errorMessage(body map[string]interface{}, status int) string {
	if errObj, ok := body["error"].(map[string]interface{}); ok {
		if msg, ok := errObj["message"].(string); ok && !util.IsBlank(msg) {
			return msg
		}
	}
	return fmt.Sprintf("Gateway error: %d", status)
}

//IsSenderIdentityErr decides whether a gateway failure was caused by the
//sender identity. Kept as a single predicate so the matching rule can change
//without touching the sending flow.
func IsSenderIdentityErr(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "sender") || strings.Contains(m, "from")
}
