// Command chi demonstrates livestock with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then POST to http://localhost:8080/orders or fetch
// http://localhost:8080/openapi.json.
package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	v "github.com/jpenwith/livestock"
	"github.com/jpenwith/livestock/openapi"
)

type OrderRequest struct {
	CustomerName string  `json:"customer_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
	Coupon       *string `json:"coupon"`
}

type Order struct {
	CustomerName *v.Validated[string]
	ItemCount    *v.Validated[int]
	Total        *v.Validated[float64]
	Coupon       *v.OptionalValidated[string]
}

func NewOrder(req OrderRequest) *Order {
	return &Order{
		CustomerName: v.NewValidated(req.CustomerName, v.IsNotEmpty(), v.IsLessThanOrEqualTo(200)),
		ItemCount:    v.NewValidated(req.ItemCount, v.IsBetween(1, 100)),
		Total:        v.NewValidated(req.Total, v.IsGreaterThanOrEqualToValue(0.01)),
		Coupon: v.NewOptionalValidated(req.Coupon, v.NotRequired,
			v.Matches(`[A-Z]{4}\d{2}`),
			v.FromRule[string](validation.Length(6, 6)),
		),
	}
}

func (o *Order) Validate() error {
	return v.Collect(map[string]v.Checker{
		"customer_name": o.CustomerName,
		"item_count":    o.ItemCount,
		"total":         o.Total,
		"coupon":        o.Coupon,
	})
}

func (o *Order) Schema() *openapi3.SchemaRef {
	return openapi.ObjectMust(
		openapi.Field("customer_name", o.CustomerName),
		openapi.Field("item_count", o.ItemCount),
		openapi.Field("total", o.Total),
		openapi.OptionalField("coupon", o.Coupon),
	)
}

type ErrorResponse struct {
	Errors v.FieldErrors `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	body := NewOrder(OrderRequest{}).Schema()
	doc := openapi.DocBase("Example API (chi)", "Demonstrates livestock with chi", "0.1.0")
	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:  "Create an order",
		Request:  body,
		Response: body,
	})

	r := chi.NewRouter()

	r.Method(http.MethodGet, "/openapi.json", openapi.HandlerMust(doc))

	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var req OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if err := NewOrder(req).Validate(); err != nil {
			var fe v.FieldErrors
			if errors.As(err, &fe) {
				writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Errors: fe})
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, req)
	})

	logger.Info("listening", slog.String("addr", ":8080"))
	if err := http.ListenAndServe(":8080", r); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
