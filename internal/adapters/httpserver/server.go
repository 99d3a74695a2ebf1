package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/nduthigear/gearhq/internal/domain"
	"github.com/nduthigear/gearhq/internal/usecase"
)

type Server struct {
	mux           *http.ServeMux
	catalog       *usecase.CatalogUC
	orders        *usecase.OrderUC
	consultations *usecase.ConsultationUC
	feed          *usecase.FeedUC
}

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func New(catalog *usecase.CatalogUC, orders *usecase.OrderUC, consultations *usecase.ConsultationUC, feed *usecase.FeedUC) http.Handler {
	s := &Server{
		mux:           http.NewServeMux(),
		catalog:       catalog,
		orders:        orders,
		consultations: consultations,
		feed:          feed,
	}
	s.routes()
	return Chain(s.mux,
		RateLimit(120),
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.mux.HandleFunc("/api/categories", s.handleCategories)
	s.mux.HandleFunc("/api/categories/", s.handleCategoryByID)

	s.mux.HandleFunc("/api/products", s.handleProducts)
	s.mux.HandleFunc("/api/products/", s.handleProductByID)

	s.mux.HandleFunc("/api/orders", s.handleOrders)
	s.mux.HandleFunc("/api/orders/", s.handleOrderByID)

	s.mux.HandleFunc("/api/consultations", s.handleConsultations)

	s.mux.HandleFunc("/api/gear", s.handleGear)

	s.mux.HandleFunc("/api/twitter/posts", s.handleTwitterPosts)
	s.mux.HandleFunc("/api/twitter/refresh", s.handleTwitterRefresh)

	s.mux.HandleFunc("/api/admin/orders/export", s.handleOrdersExport)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

// FieldErrors maps request fields to human-readable validation messages.
type FieldErrors map[string]string

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"message": message})
}

func writeValidationError(w http.ResponseWriter, message string, fields FieldErrors) {
	writeJSON(w, 400, map[string]any{"message": message, "errors": fields})
}

func pathID(r *http.Request, prefix string) (uuid.UUID, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	raw = strings.TrimSuffix(raw, "/")
	id, err := uuid.Parse(raw)
	return id, err == nil
}

// ---- Categories ----

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (req categoryRequest) validate() FieldErrors {
	fields := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Name is required"
	}
	return fields
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.catalog.ListCategories(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list categories")
			writeError(w, 500, "Failed to fetch categories")
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		var req categoryRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
			writeError(w, 400, "Invalid category data")
			return
		}
		if fields := req.validate(); len(fields) > 0 {
			writeValidationError(w, "Invalid category data", fields)
			return
		}
		c := &domain.Category{Name: strings.TrimSpace(req.Name), Description: req.Description, ImageURL: req.ImageURL}
		if err := s.catalog.CreateCategory(r.Context(), c); err != nil {
			log.Error().Err(err).Msg("create category")
			writeError(w, 500, "Failed to create category")
			return
		}
		writeJSON(w, 201, c)
	default:
		writeError(w, 405, "Method not allowed")
	}
}

func (s *Server) handleCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/categories/")
	if !ok {
		writeError(w, 400, "Invalid category id")
		return
	}
	switch r.Method {
	case http.MethodGet:
		c, err := s.catalog.GetCategory(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, 404, "Category not found")
				return
			}
			log.Error().Err(err).Msg("get category")
			writeError(w, 500, "Failed to fetch category")
			return
		}
		writeJSON(w, 200, c)
	case http.MethodPut:
		c, err := s.catalog.GetCategory(r.Context(), id)
		if err != nil {
			writeError(w, 404, "Category not found")
			return
		}
		var req struct {
			Name        *string `json:"name"`
			Description *string `json:"description"`
			ImageURL    *string `json:"imageUrl"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
			writeError(w, 400, "Invalid category data")
			return
		}
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				writeValidationError(w, "Invalid category data", FieldErrors{"name": "Name is required"})
				return
			}
			c.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.ImageURL != nil {
			c.ImageURL = *req.ImageURL
		}
		if err := s.catalog.SaveCategory(r.Context(), c); err != nil {
			log.Error().Err(err).Msg("update category")
			writeError(w, 500, "Failed to update category")
			return
		}
		writeJSON(w, 200, c)
	case http.MethodDelete:
		if err := s.catalog.DeleteCategory(r.Context(), id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, 404, "Category not found")
				return
			}
			log.Error().Err(err).Msg("delete category")
			writeError(w, 500, "Failed to delete category")
			return
		}
		writeJSON(w, 200, map[string]string{"message": "Category deleted successfully"})
	default:
		writeError(w, 405, "Method not allowed")
	}
}

// ---- Products ----

type productRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	ProductType   string          `json:"productType"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    *uuid.UUID      `json:"categoryId"`
	Brand         string          `json:"brand"`
	Sizes         []string        `json:"sizes"`
	Colors        []string        `json:"colors"`
	ImageURL      string          `json:"imageUrl"`
	StockQuantity int             `json:"stockQuantity"`
	InStock       *bool           `json:"inStock"`
	Featured      bool            `json:"featured"`
}

func (req productRequest) validate() FieldErrors {
	fields := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Name is required"
	}
	if !domain.ProductType(req.ProductType).Valid() {
		fields["productType"] = "Product type must be one of helmet, jacket, gloves, boots"
	}
	if req.Price.IsNegative() {
		fields["price"] = "Price cannot be negative"
	}
	if req.StockQuantity < 0 {
		fields["stockQuantity"] = "Stock quantity cannot be negative"
	}
	return fields
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		qv := r.URL.Query()
		f := domain.ProductFilter{}
		if qv.Get("featured") == "true" {
			f.FeaturedOnly = true
		} else if t := qv.Get("type"); t != "" {
			f.Type = domain.ProductType(t)
		} else if cid := qv.Get("categoryId"); cid != "" {
			id, err := uuid.Parse(cid)
			if err != nil {
				writeError(w, 400, "Invalid category id")
				return
			}
			f.CategoryID = &id
		}
		list, err := s.catalog.ListProducts(r.Context(), f)
		if err != nil {
			log.Error().Err(err).Msg("list products")
			writeError(w, 500, "Failed to fetch products")
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		var req productRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
			writeError(w, 400, "Invalid product data")
			return
		}
		if fields := req.validate(); len(fields) > 0 {
			writeValidationError(w, "Invalid product data", fields)
			return
		}
		inStock := req.StockQuantity > 0
		if req.InStock != nil {
			inStock = *req.InStock
		}
		p := &domain.Product{
			Name:          strings.TrimSpace(req.Name),
			Description:   req.Description,
			ProductType:   domain.ProductType(req.ProductType),
			Price:         req.Price,
			CategoryID:    req.CategoryID,
			Brand:         req.Brand,
			Sizes:         req.Sizes,
			Colors:        req.Colors,
			ImageURL:      req.ImageURL,
			StockQuantity: req.StockQuantity,
			InStock:       inStock,
			Featured:      req.Featured,
		}
		if err := s.catalog.CreateProduct(r.Context(), p); err != nil {
			log.Error().Err(err).Msg("create product")
			writeError(w, 500, "Failed to create product")
			return
		}
		writeJSON(w, 201, p)
	default:
		writeError(w, 405, "Method not allowed")
	}
}

func (s *Server) handleProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/products/")
	if !ok {
		writeError(w, 400, "Invalid product id")
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := s.catalog.GetProduct(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, 404, "Product not found")
				return
			}
			log.Error().Err(err).Msg("get product")
			writeError(w, 500, "Failed to fetch product")
			return
		}
		writeJSON(w, 200, p)
	case http.MethodPut:
		p, err := s.catalog.GetProduct(r.Context(), id)
		if err != nil {
			writeError(w, 404, "Product not found")
			return
		}
		var req struct {
			Name          *string          `json:"name"`
			Description   *string          `json:"description"`
			ProductType   *string          `json:"productType"`
			Price         *decimal.Decimal `json:"price"`
			CategoryID    *uuid.UUID       `json:"categoryId"`
			Brand         *string          `json:"brand"`
			Sizes         []string         `json:"sizes"`
			Colors        []string         `json:"colors"`
			ImageURL      *string          `json:"imageUrl"`
			StockQuantity *int             `json:"stockQuantity"`
			InStock       *bool            `json:"inStock"`
			Featured      *bool            `json:"featured"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
			writeError(w, 400, "Invalid product data")
			return
		}
		if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
			p.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.ProductType != nil {
			t := domain.ProductType(*req.ProductType)
			if !t.Valid() {
				writeValidationError(w, "Invalid product data", FieldErrors{"productType": "Product type must be one of helmet, jacket, gloves, boots"})
				return
			}
			p.ProductType = t
		}
		if req.Price != nil && !req.Price.IsNegative() {
			p.Price = *req.Price
		}
		if req.CategoryID != nil {
			p.CategoryID = req.CategoryID
		}
		if req.Brand != nil {
			p.Brand = *req.Brand
		}
		if req.Sizes != nil {
			p.Sizes = req.Sizes
		}
		if req.Colors != nil {
			p.Colors = req.Colors
		}
		if req.ImageURL != nil {
			p.ImageURL = *req.ImageURL
		}
		if req.StockQuantity != nil && *req.StockQuantity >= 0 {
			p.StockQuantity = *req.StockQuantity
		}
		if req.InStock != nil {
			p.InStock = *req.InStock
		}
		if req.Featured != nil {
			p.Featured = *req.Featured
		}
		if err := s.catalog.SaveProduct(r.Context(), p); err != nil {
			log.Error().Err(err).Msg("update product")
			writeError(w, 500, "Failed to update product")
			return
		}
		writeJSON(w, 200, p)
	case http.MethodDelete:
		if err := s.catalog.DeleteProduct(r.Context(), id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, 404, "Product not found")
				return
			}
			log.Error().Err(err).Msg("delete product")
			writeError(w, 500, "Failed to delete product")
			return
		}
		writeJSON(w, 200, map[string]string{"message": "Product deleted successfully"})
	default:
		writeError(w, 405, "Method not allowed")
	}
}

// ---- Orders ----

type checkoutOrder struct {
	UserID          *uuid.UUID      `json:"userId"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	ShippingAddress string          `json:"shippingAddress"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
}

type checkoutItem struct {
	ProductID    uuid.UUID       `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	Quantity     int             `json:"quantity"`
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type checkoutRequest struct {
	Order checkoutOrder  `json:"order"`
	Items []checkoutItem `json:"items"`
}

func (req checkoutRequest) validate() FieldErrors {
	fields := FieldErrors{}
	if len(strings.TrimSpace(req.Order.CustomerName)) < 2 {
		fields["customerName"] = "Name must be at least 2 characters"
	}
	if !emailRe.MatchString(strings.TrimSpace(req.Order.CustomerEmail)) {
		fields["customerEmail"] = "Invalid email address"
	}
	if len(strings.TrimSpace(req.Order.CustomerPhone)) < 10 {
		fields["customerPhone"] = "Phone must be at least 10 characters"
	}
	if len(strings.TrimSpace(req.Order.ShippingAddress)) < 10 {
		fields["shippingAddress"] = "Address must be at least 10 characters"
	}
	if len(req.Items) == 0 {
		fields["items"] = "Order must contain at least one item"
	}
	for _, it := range req.Items {
		if it.ProductID == uuid.Nil {
			fields["items"] = "Every item needs a product id"
			break
		}
		if it.Quantity <= 0 {
			fields["items"] = "Item quantity must be positive"
			break
		}
	}
	return fields
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.orders.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list orders")
			writeError(w, 500, "Failed to fetch orders")
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		var req checkoutRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<18)).Decode(&req); err != nil {
			writeError(w, 400, "Invalid order data")
			return
		}
		if fields := req.validate(); len(fields) > 0 {
			writeValidationError(w, "Invalid order data", fields)
			return
		}
		o := &domain.Order{
			UserID:          req.Order.UserID,
			CustomerName:    strings.TrimSpace(req.Order.CustomerName),
			CustomerEmail:   strings.TrimSpace(req.Order.CustomerEmail),
			CustomerPhone:   strings.TrimSpace(req.Order.CustomerPhone),
			ShippingAddress: strings.TrimSpace(req.Order.ShippingAddress),
			TotalAmount:     req.Order.TotalAmount,
		}
		for _, it := range req.Items {
			o.Items = append(o.Items, domain.OrderItem{
				ProductID:    it.ProductID,
				ProductName:  it.ProductName,
				ProductPrice: it.ProductPrice,
				Quantity:     it.Quantity,
				Size:         it.Size,
				Color:        it.Color,
				Subtotal:     it.Subtotal,
			})
		}
		if err := s.orders.Checkout(r.Context(), o); err != nil {
			log.Error().Err(err).Msg("create order")
			writeError(w, 500, "Failed to create order")
			return
		}
		items := o.Items
		o.Items = nil
		writeJSON(w, 201, map[string]any{"order": o, "items": items})
	default:
		writeError(w, 405, "Method not allowed")
	}
}

func (s *Server) handleOrderByID(w http.ResponseWriter, r *http.Request) {
	// PATCH /api/orders/{id}/status is the only nested route.
	if strings.HasSuffix(r.URL.Path, "/status") {
		s.handleOrderStatus(w, r)
		return
	}
	id, ok := pathID(r, "/api/orders/")
	if !ok {
		writeError(w, 400, "Invalid order id")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, 405, "Method not allowed")
		return
	}
	o, err := s.orders.GetWithItems(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, 404, "Order not found")
			return
		}
		log.Error().Err(err).Msg("get order")
		writeError(w, 500, "Failed to fetch order")
		return
	}
	writeJSON(w, 200, o)
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeError(w, 405, "Method not allowed")
		return
	}
	raw := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	raw = strings.TrimSuffix(raw, "/status")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, 400, "Invalid order id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 1024)).Decode(&req); err != nil {
		writeError(w, 400, "Invalid status data")
		return
	}
	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		writeValidationError(w, "Invalid status data", FieldErrors{"status": "Status must be one of pending, processing, shipped, delivered, cancelled"})
		return
	}
	o, err := s.orders.UpdateStatus(r.Context(), id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, 404, "Order not found")
			return
		}
		log.Error().Err(err).Msg("update order status")
		writeError(w, 500, "Failed to update order status")
		return
	}
	writeJSON(w, 200, o)
}

// ---- Consultations ----

type consultationRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

func (req consultationRequest) validate() FieldErrors {
	fields := FieldErrors{}
	if strings.TrimSpace(req.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	if !emailRe.MatchString(strings.TrimSpace(req.Email)) {
		fields["email"] = "Invalid email address"
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields["phone"] = "Phone is required"
	}
	if !domain.ServiceType(req.ServiceType).Valid() {
		fields["serviceType"] = "Unknown service type"
	}
	if strings.TrimSpace(req.Message) == "" {
		fields["message"] = "Message is required"
	}
	return fields
}

func (s *Server) handleConsultations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.consultations.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list consultations")
			writeError(w, 500, "Failed to fetch consultations")
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		var req consultationRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
			writeError(w, 400, "Invalid consultation data")
			return
		}
		if fields := req.validate(); len(fields) > 0 {
			writeValidationError(w, "Invalid consultation data", fields)
			return
		}
		c := &domain.Consultation{
			FirstName:   strings.TrimSpace(req.FirstName),
			LastName:    strings.TrimSpace(req.LastName),
			Email:       strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:       strings.TrimSpace(req.Phone),
			ServiceType: domain.ServiceType(req.ServiceType),
			Message:     req.Message,
		}
		if err := s.consultations.Create(r.Context(), c); err != nil {
			log.Error().Err(err).Msg("create consultation")
			writeError(w, 500, "Failed to create consultation")
			return
		}
		writeJSON(w, 201, c)
	default:
		writeError(w, 405, "Method not allowed")
	}
}

// ---- Gear & Twitter feed ----

func (s *Server) handleGear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, 405, "Method not allowed")
		return
	}
	list, err := s.feed.ListGear(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Error().Err(err).Msg("list gear")
		writeError(w, 500, "Failed to fetch gear products")
		return
	}
	writeJSON(w, 200, list)
}

func (s *Server) handleTwitterPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, 405, "Method not allowed")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	posts, err := s.feed.LatestPosts(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list twitter posts")
		writeError(w, 500, "Failed to fetch Twitter posts")
		return
	}
	writeJSON(w, 200, posts)
}

func (s *Server) handleTwitterRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, 405, "Method not allowed")
		return
	}
	posts, err := s.feed.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrFeedNotConfigured) {
			writeError(w, 500, "Twitter API key not configured")
			return
		}
		log.Error().Err(err).Msg("refresh twitter feed")
		writeError(w, 500, "Failed to refresh Twitter feed")
		return
	}
	writeJSON(w, 200, map[string]any{
		"posts":       posts,
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
	})
}
