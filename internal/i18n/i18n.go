// Package i18n provides internationalization support for the cart service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// TranslateReason returns the translated message for a cart rejection
// reason code, e.g. "coupon_minimum_not_met".
func (t *Translator) TranslateReason(reason, locale string) string {
	return t.Translate("reason."+reason, locale)
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "he-IL,he;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "he" from "he-IL")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "User not registered",
			"error.session_required":     "X-Session-ID header is required",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timed out",

			// Rejection reasons
			"reason.coupon_not_found":        "Coupon code not found",
			"reason.coupon_already_applied":  "Coupon is already applied",
			"reason.coupon_minimum_not_met":  "Order minimum for this coupon is not met",
			"reason.invalid_quantity":        "Quantity must be a positive number",
			"reason.invalid_delivery_method": "Delivery method must be delivery or pickup",
			"reason.unknown_delivery_zone":   "Unknown delivery zone, standard fee applies",
			"reason.item_not_found":          "Item not found",
			"reason.item_unavailable":        "Item is currently unavailable",
			"reason.cart_empty":              "Cart is empty",
			"reason.insufficient_points":     "Not enough loyalty points",

			// Success messages
			"success.order_placed": "Order placed successfully",
		},
		"he": {
			// Error messages
			"error.invalid_request":      "בקשה לא תקינה",
			"error.invalid_request_body": "גוף הבקשה אינו תקין",
			"error.internal_error":       "אירעה שגיאה בלתי צפויה",
			"error.unauthorized":         "אין הרשאה",
			"error.invalid_credentials":  "משתמש אינו רשום",
			"error.session_required":     "נדרשת כותרת X-Session-ID",
			"error.forbidden":            "אסור",
			"error.not_found":            "לא נמצא",
			"error.rate_limit_exceeded":  "יותר מדי בקשות, נסו שוב מאוחר יותר",
			"error.conflict":             "התנגשות",
			"error.invalid_token":        "אסימון לא תקין או שפג תוקפו",
			"error.token_required":       "נדרש אסימון אימות",
			"error.timeout":              "תם הזמן המוקצב לבקשה",

			// Rejection reasons
			"reason.coupon_not_found":        "קוד הקופון לא נמצא",
			"reason.coupon_already_applied":  "הקופון כבר הופעל",
			"reason.coupon_minimum_not_met":  "לא הגעתם למינימום הזמנה לקופון זה",
			"reason.invalid_quantity":        "הכמות חייבת להיות מספר חיובי",
			"reason.invalid_delivery_method": "שיטת המשלוח חייבת להיות משלוח או איסוף עצמי",
			"reason.unknown_delivery_zone":   "אזור משלוח לא מוכר, יחול תעריף רגיל",
			"reason.item_not_found":          "הפריט לא נמצא",
			"reason.item_unavailable":        "הפריט אינו זמין כרגע",
			"reason.cart_empty":              "העגלה ריקה",
			"reason.insufficient_points":     "אין מספיק נקודות מועדון",

			// Success messages
			"success.order_placed": "ההזמנה בוצעה בהצלחה",
		},
	}
}
