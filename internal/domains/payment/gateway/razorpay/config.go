package razorpay

import "fmt"

// Config holds Razorpay credentials and endpoints.
type Config struct {
	KeyID      string
	KeySecret  string
	APIURL     string
	WebhookURL string
}

func NewConfig(keyID, keySecret, apiURL, webhookURL string) (*Config, error) {
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay: key id and secret are required")
	}
	if apiURL == "" {
		apiURL = "https://api.razorpay.com"
	}
	return &Config{
		KeyID:      keyID,
		KeySecret:  keySecret,
		APIURL:     apiURL,
		WebhookURL: webhookURL,
	}, nil
}

// OrdersEndpoint is the order-creation API.
func (c *Config) OrdersEndpoint() string {
	return c.APIURL + "/v1/orders"
}
