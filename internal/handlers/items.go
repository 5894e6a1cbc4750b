package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MuhFawad1/pulumi-cloud-infrastructure/internal/items"
	"github.com/MuhFawad1/pulumi-cloud-infrastructure/internal/notify"
	"github.com/MuhFawad1/pulumi-cloud-infrastructure/internal/router"

	"github.com/aws/aws-lambda-go/events"
)

type action func(ctx context.Context, req events.APIGatewayV2HTTPRequest, params router.Params) (events.APIGatewayV2HTTPResponse, error)

// ItemsHandler serves the item CRUD API over one DynamoDB-backed
// collection. Construct with NewItemsHandler; a process builds one and
// reuses it across invocations, but the handler itself keeps no state
// between requests.
type ItemsHandler struct {
	store  *items.Store
	notify *notify.Publisher
	routes router.Table[action]
}

func NewItemsHandler(store *items.Store, publisher *notify.Publisher) *ItemsHandler {
	h := &ItemsHandler{store: store, notify: publisher}
	h.routes = router.Table[action]{
		{Method: http.MethodGet, Pattern: "/items", Value: h.listItems},
		{Method: http.MethodPost, Pattern: "/items", Value: h.createItem},
		{Method: http.MethodGet, Pattern: "/items/{id}", Value: h.getItem},
	}
	return h
}

// Handle serves one API Gateway invocation. Every failure becomes a
// JSON error response; the error return is always nil, so the runtime
// never sees a transport-level failure.
func (h *ItemsHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (resp events.APIGatewayV2HTTPResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = errResp(500, fmt.Sprintf("%v", r))
		}
	}()

	act, params, ok := h.routes.Match(req.RequestContext.HTTP.Method, req.RequestContext.HTTP.Path)
	if !ok {
		return errResp(404, "Not found")
	}
	return act(ctx, req, params)
}

func (h *ItemsHandler) listItems(ctx context.Context, _ events.APIGatewayV2HTTPRequest, _ router.Params) (events.APIGatewayV2HTTPResponse, error) {
	all, err := h.store.List(ctx)
	if err != nil {
		return errResp(500, err.Error())
	}
	return jsonResp(200, all)
}

func (h *ItemsHandler) createItem(ctx context.Context, req events.APIGatewayV2HTTPRequest, _ router.Params) (events.APIGatewayV2HTTPResponse, error) {
	var item items.Item
	if err := json.Unmarshal([]byte(req.Body), &item); err != nil {
		// Malformed bodies share the 500 path with store failures.
		// Existing clients key off the error envelope, not the code.
		return errResp(500, err.Error())
	}

	if err := h.store.Put(ctx, item); err != nil {
		return errResp(500, err.Error())
	}

	h.notify.ItemWritten(ctx, item.ID())

	return jsonResp(201, map[string]any{"message": "Item created"})
}

func (h *ItemsHandler) getItem(ctx context.Context, _ events.APIGatewayV2HTTPRequest, params router.Params) (events.APIGatewayV2HTTPResponse, error) {
	item, found, err := h.store.Get(ctx, params["id"])
	if err != nil {
		return errResp(500, err.Error())
	}
	if !found {
		return errResp(404, "Item not found")
	}
	return jsonResp(200, item)
}

func jsonResp(status int, v any) (events.APIGatewayV2HTTPResponse, error) {
	b, _ := json.Marshal(v)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"content-type":                "application/json",
			"access-control-allow-origin": "*",
		},
		Body: string(b),
	}, nil
}

func errResp(status int, msg string) (events.APIGatewayV2HTTPResponse, error) {
	return jsonResp(status, map[string]any{
		"error": msg,
	})
}
