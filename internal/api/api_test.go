package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/inventory-client/internal/apiclient"
	"github.com/example/inventory-client/internal/model"
	"github.com/example/inventory-client/internal/session"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(_ apiclient.Severity, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func newTestAPI(t *testing.T, handler http.Handler) (*Client, *session.MemoryStore, *recordingNotifier) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	notifier := &recordingNotifier{}
	core, err := apiclient.New(apiclient.Options{
		BaseURL:    srv.URL,
		TokenStore: store,
		Notifier:   notifier,
	})
	require.NoError(t, err)

	return NewClient(core, store), store, notifier
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestAuth_LoginStoresTokenForNextCall(t *testing.T) {
	router := chi.NewRouter()
	var meAuth string
	router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds model.LoginCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)
		assert.Equal(t, "secret", creds.Password)

		writeJSON(w, http.StatusOK, model.LoginResult{
			Token: "abc123",
			User:  model.User{ID: 1, Username: "alice", Role: model.RoleAdmin},
		})
	})
	router.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		meAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, model.User{ID: 1, Username: "alice", Role: model.RoleAdmin})
	})

	client, store, _ := newTestAPI(t, router)
	ctx := context.Background()

	result, err := client.Auth.Login(ctx, model.LoginCredentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.Token)
	assert.Equal(t, "alice", result.User.Username)

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	user, err := client.Auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", meAuth)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestAuth_LogoutClearsToken(t *testing.T) {
	client, store, _ := newTestAPI(t, chi.NewRouter())
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "abc123"))

	require.NoError(t, client.Auth.Logout(ctx))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestProducts_List_QueryAndEnvelope(t *testing.T) {
	router := chi.NewRouter()
	var gotQuery string
	router.Get("/products", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		page := model.Page[model.Product]{
			Content:       make([]model.Product, 12),
			TotalElements: 32,
			TotalPages:    2,
			Size:          20,
			Number:        1,
			First:         false,
			Last:          true,
		}
		writeJSON(w, http.StatusOK, page)
	})

	client, _, _ := newTestAPI(t, router)

	out, err := client.Products.List(context.Background(), model.PageRequest{Page: 1, Size: 20})

	require.NoError(t, err)
	assert.Equal(t, "page=1&size=20", gotQuery)
	assert.Len(t, out.Content, 12)
	assert.EqualValues(t, 32, out.TotalElements)
	assert.Equal(t, 2, out.TotalPages)
	assert.Equal(t, 1, out.Number)
	assert.False(t, out.First)
	assert.True(t, out.Last)
}

func TestProducts_List_DefaultPagination(t *testing.T) {
	router := chi.NewRouter()
	var gotQuery string
	router.Get("/products", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, model.Page[model.Product]{})
	})

	client, _, _ := newTestAPI(t, router)

	_, err := client.Products.List(context.Background(), model.PageRequest{})

	require.NoError(t, err)
	assert.Equal(t, "page=0&size=10", gotQuery)
}

func TestProducts_CreateGetRoundTrip(t *testing.T) {
	var stored model.Product
	router := chi.NewRouter()
	router.Post("/products", func(w http.ResponseWriter, r *http.Request) {
		var dto model.CreateProductDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		stored = model.Product{
			ID:            7,
			Name:          dto.Name,
			Description:   dto.Description,
			SKU:           dto.SKU,
			Category:      dto.Category,
			Price:         dto.Price,
			StockQuantity: dto.StockQuantity,
			MinStockLevel: dto.MinStockLevel,
			Supplier:      dto.Supplier,
		}
		writeJSON(w, http.StatusCreated, stored)
	})
	router.Get("/products/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stored)
	})

	client, _, _ := newTestAPI(t, router)
	ctx := context.Background()

	dto := model.CreateProductDTO{
		Name:          "Widget",
		SKU:           "W-1",
		Category:      "gadgets",
		Price:         9.99,
		StockQuantity: 100,
		MinStockLevel: 10,
		Supplier:      "Acme",
	}
	created, err := client.Products.Create(ctx, dto)
	require.NoError(t, err)
	require.EqualValues(t, 7, created.ID)

	got, err := client.Products.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.Name, got.Name)
	assert.Equal(t, dto.SKU, got.SKU)
	assert.Equal(t, dto.Price, got.Price)
	assert.Equal(t, dto.StockQuantity, got.StockQuantity)
	assert.Equal(t, dto.MinStockLevel, got.MinStockLevel)
	assert.Equal(t, dto.Supplier, got.Supplier)
}

func TestProducts_Update_SendsOnlyChangedFields(t *testing.T) {
	var gotBody []byte
	router := chi.NewRouter()
	router.Put("/products/7", func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		writeJSON(w, http.StatusOK, model.Product{ID: 7, Price: 12.5})
	})

	client, _, _ := newTestAPI(t, router)

	price := 12.5
	_, err := client.Products.Update(context.Background(), 7, model.UpdateProductDTO{Price: &price})

	require.NoError(t, err)
	assert.JSONEq(t, `{"price":12.5}`, string(gotBody))
}

func TestProducts_DeleteTwice(t *testing.T) {
	deleted := false
	router := chi.NewRouter()
	router.Delete("/products/7", func(w http.ResponseWriter, r *http.Request) {
		if deleted {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
			return
		}
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})

	client, _, notifier := newTestAPI(t, router)
	ctx := context.Background()

	require.NoError(t, client.Products.Delete(ctx, 7))

	err := client.Products.Delete(ctx, 7)
	require.Error(t, err)
	assert.Equal(t, apiclient.KindAPI, apiclient.ErrorKind(err))
	assert.Equal(t, []string{"Product not found"}, notifier.Messages())
}

func TestOrders_Create(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var dto model.CreateOrderDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		require.Len(t, dto.Items, 1)
		assert.EqualValues(t, 4, dto.Items[0].ProductID)
		assert.Equal(t, 2, dto.Items[0].Quantity)

		writeJSON(w, http.StatusCreated, model.Order{
			ID:           11,
			OrderNumber:  "ORD-0011",
			CustomerID:   dto.CustomerID,
			CustomerName: dto.CustomerName,
			Status:       model.OrderPending,
			TotalAmount:  19.98,
			Items: []model.OrderItem{{
				ID: 1, ProductID: 4, ProductName: "Widget",
				Quantity: 2, UnitPrice: 9.99, TotalPrice: 19.98,
			}},
		})
	})

	client, _, _ := newTestAPI(t, router)

	order, err := client.Orders.Create(context.Background(), model.CreateOrderDTO{
		CustomerID:   3,
		CustomerName: "Alice",
		Items:        []model.CreateOrderItemDTO{{ProductID: 4, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, 19.98, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Widget", order.Items[0].ProductName)
}

func TestOrders_Get_UnknownStatusRoundTrips(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/orders/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 5, "status": "ON_HOLD"})
	})

	client, _, _ := newTestAPI(t, router)

	order, err := client.Orders.Get(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatus("ON_HOLD"), order.Status)
	assert.False(t, order.Status.Valid())
}

func TestTransactions_CreateAndList(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/transactions", func(w http.ResponseWriter, r *http.Request) {
		var dto model.CreateTransactionDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Equal(t, model.StockOut, dto.Type)
		require.NotNil(t, dto.ReferenceID)
		assert.EqualValues(t, 11, *dto.ReferenceID)

		writeJSON(w, http.StatusCreated, model.Transaction{
			ID:          21,
			ProductID:   dto.ProductID,
			ProductName: "Widget",
			Type:        dto.Type,
			Quantity:    dto.Quantity,
			Reason:      dto.Reason,
			ReferenceID: dto.ReferenceID,
		})
	})
	router.Get("/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.Page[model.Transaction]{
			Content:       []model.Transaction{{ID: 21, Type: model.StockOut}},
			TotalElements: 1,
			TotalPages:    1,
			Size:          10,
			First:         true,
			Last:          true,
		})
	})

	client, _, _ := newTestAPI(t, router)
	ctx := context.Background()

	ref := int64(11)
	tx, err := client.Transactions.Create(ctx, model.CreateTransactionDTO{
		ProductID:   4,
		Type:        model.StockOut,
		Quantity:    2,
		Reason:      "order shipment",
		ReferenceID: &ref,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 21, tx.ID)

	page, err := client.Transactions.List(ctx, model.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, model.StockOut, page.Content[0].Type)
}
