package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

// Domain error codes as exposed on the wire. They are not HTTP status
// codes; every recognized domain error is answered with HTTP 400.
const (
	codeCategoryAlreadyExists = 300
	codeCategoryNotFound      = 301
	codeUserAlreadyExists     = 400
	codeUserNotFound          = 401
	codeBadRequest            = 402
	codeProductNotFound       = 501
	codeInsufficientStock     = 502
	codeOrderNotFound         = 601
	codeOrderItemNotFound     = 701
	codePaymentNotFound       = 801
)

type baseMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var errorCodes = []struct {
	err  error
	code int
}{
	{model.ErrCategoryAlreadyExists, codeCategoryAlreadyExists},
	{model.ErrCategoryNotFound, codeCategoryNotFound},
	{model.ErrUserAlreadyExists, codeUserAlreadyExists},
	{model.ErrUserNotFound, codeUserNotFound},
	{model.ErrBadRequest, codeBadRequest},
	{model.ErrProductNotFound, codeProductNotFound},
	{model.ErrInsufficientStock, codeInsufficientStock},
	{model.ErrOrderNotFound, codeOrderNotFound},
	{model.ErrOrderItemNotFound, codeOrderItemNotFound},
	{model.ErrPaymentNotFound, codePaymentNotFound},
}

var messages = map[string]map[int]string{
	"en": {
		codeCategoryAlreadyExists: "category already exists",
		codeCategoryNotFound:      "category not found",
		codeUserAlreadyExists:     "user already exists",
		codeUserNotFound:          "user not found",
		codeBadRequest:            "bad request",
		codeProductNotFound:       "product not found",
		codeInsufficientStock:     "product has not enough stock",
		codeOrderNotFound:         "order not found",
		codeOrderItemNotFound:     "order item not found",
		codePaymentNotFound:       "payment not found",
	},
	"uz": {
		codeCategoryAlreadyExists: "bunday kategoriya allaqachon mavjud",
		codeCategoryNotFound:      "kategoriya topilmadi",
		codeUserAlreadyExists:     "bunday foydalanuvchi allaqachon mavjud",
		codeUserNotFound:          "foydalanuvchi topilmadi",
		codeBadRequest:            "noto'g'ri so'rov",
		codeProductNotFound:       "mahsulot topilmadi",
		codeInsufficientStock:     "mahsulot yetarli emas",
		codeOrderNotFound:         "buyurtma topilmadi",
		codeOrderItemNotFound:     "buyurtma elementi topilmadi",
		codePaymentNotFound:       "to'lov topilmadi",
	},
}

// writeError maps a recognized domain error to HTTP 400 with its code
// and a message resolved for the request language; anything else is a
// 500 carrying the raw error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, mapping := range errorCodes {
		if errors.Is(err, mapping.err) {
			writeJSON(w, http.StatusBadRequest, baseMessage{
				Code:    mapping.code,
				Message: resolveMessage(mapping.code, requestLanguage(r)),
			})
			return
		}
	}
	writeJSON(w, http.StatusInternalServerError, baseMessage{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}

func resolveMessage(code int, lang string) string {
	if m, ok := messages[lang]; ok {
		if msg, ok := m[code]; ok {
			return msg
		}
	}
	return messages["en"][code]
}

func requestLanguage(r *http.Request) string {
	lang := r.Header.Get("Accept-Language")
	if len(lang) < 2 {
		return "en"
	}
	return strings.ToLower(lang[:2])
}
