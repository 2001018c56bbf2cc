package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sanjayxseth/mskitchen/internal/domain"
	"github.com/sanjayxseth/mskitchen/internal/service"
)

type Handler struct {
	Orders    service.OrderServiceInterface
	Menus     service.MenuServiceInterface
	Customers service.CustomerServiceInterface
	Reviews   service.ReviewServiceInterface
	Recipes   service.RecipeServiceInterface
	Reports   service.ReportServiceInterface
	Analytics service.AnalyticsServiceInterface
}

func NewHandler(
	orderSvc service.OrderServiceInterface,
	menuSvc service.MenuServiceInterface,
	customerSvc service.CustomerServiceInterface,
	reviewSvc service.ReviewServiceInterface,
	recipeSvc service.RecipeServiceInterface,
	reportSvc service.ReportServiceInterface,
	analyticsSvc service.AnalyticsServiceInterface,
) *Handler {
	return &Handler{
		Orders:    orderSvc,
		Menus:     menuSvc,
		Customers: customerSvc,
		Reviews:   reviewSvc,
		Recipes:   recipeSvc,
		Reports:   reportSvc,
		Analytics: analyticsSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menus", h.createMenu).Methods("POST")
	r.HandleFunc("/api/menus", h.getMenus).Methods("GET")
	r.HandleFunc("/api/menus/date/{date}", h.getMenuByDate).Methods("GET")
	r.HandleFunc("/api/menus/{id}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menus/{id}", h.updateMenu).Methods("PUT")
	r.HandleFunc("/api/menus/{id}", h.deleteMenu).Methods("DELETE")
	r.HandleFunc("/api/menus/{id}/send-whatsapp", h.sendMenuWhatsApp).Methods("POST")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/pending-payments/{date}", h.getPendingPayments).Methods("GET")
	r.HandleFunc("/api/orders/pending-payments/{date}/notify", h.notifyPendingPayments).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/payment", h.updatePaymentStatus).Methods("PUT", "PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/customers", h.createCustomer).Methods("POST")
	r.HandleFunc("/api/customers", h.getCustomers).Methods("GET")
	r.HandleFunc("/api/customers/bulk", h.bulkCreateCustomers).Methods("POST")
	r.HandleFunc("/api/customers/whatsapp/{number}", h.getCustomerByWhatsApp).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.getCustomer).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.updateCustomer).Methods("PUT")
	r.HandleFunc("/api/customers/{id}", h.deleteCustomer).Methods("DELETE")

	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/reviews", h.getReviews).Methods("GET")
	r.HandleFunc("/api/reviews/analytics/item-ratings", h.getItemRatings).Methods("GET")
	r.HandleFunc("/api/reviews/{id}", h.getReview).Methods("GET")

	r.HandleFunc("/api/recipes", h.createRecipe).Methods("POST")
	r.HandleFunc("/api/recipes", h.getRecipes).Methods("GET")
	r.HandleFunc("/api/recipes/{id}", h.getRecipe).Methods("GET")
	r.HandleFunc("/api/recipes/{id}", h.updateRecipe).Methods("PUT")
	r.HandleFunc("/api/recipes/{id}", h.deleteRecipe).Methods("DELETE")

	r.HandleFunc("/api/reports/customer-order-values", h.customerOrderValuesReport).Methods("GET")
	r.HandleFunc("/api/reports/item-order-counts", h.itemsOrderedReport).Methods("GET")
	r.HandleFunc("/api/reports/item-ratings", h.itemRatingsReport).Methods("GET")

	r.HandleFunc("/api/analytics/top-items", h.getTopItems).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "mskitchen",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// --- Menus ---

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var menu domain.Menu
	if err := json.NewDecoder(r.Body).Decode(&menu); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menus.Create(&menu); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, menu)
}

func (h *Handler) getMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Menus.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	menu, err := h.Menus.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getMenuByDate(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menus.GetByDate(mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var menu domain.Menu
	if err := json.NewDecoder(r.Body).Decode(&menu); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	menu.ID = id
	if err := h.Menus.Update(&menu); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	deleted, err := h.Menus.Delete(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if deleted == 0 {
		writeError(w, domain.ErrMenuNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu deleted successfully"})
}

type sendMenuRequest struct {
	Numbers []string `json:"numbers"`
}

func (h *Handler) sendMenuWhatsApp(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req sendMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Numbers) == 0 {
		http.Error(w, "numbers are required", http.StatusBadRequest)
		return
	}
	results, err := h.Menus.Broadcast(id, req.Numbers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// --- Orders ---

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Place(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OrderFilter{
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
		Status:        q.Get("status"),
		PaymentStatus: q.Get("payment_status"),
	}
	orders, err := h.Orders.List(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type paymentUpdateRequest struct {
	PaymentStatus string `json:"payment_status"`
}

func (h *Handler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req paymentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.UpdatePayment(id, req.PaymentStatus)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getPendingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Orders.PendingPayments(mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) notifyPendingPayments(w http.ResponseWriter, r *http.Request) {
	sent, err := h.Orders.NotifyPendingPayments(mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"sent": sent})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	png, err := h.Orders.PaymentQRCode(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// --- Customers ---

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Customers.Create(&c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.Customers.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) getCustomerByWhatsApp(w http.ResponseWriter, r *http.Request) {
	c, err := h.Customers.GetByWhatsApp(mux.Vars(r)["number"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type bulkCustomersRequest struct {
	Customers []domain.Customer `json:"customers"`
}

func (h *Handler) bulkCreateCustomers(w http.ResponseWriter, r *http.Request) {
	var req bulkCustomersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Customers) == 0 {
		http.Error(w, "customers are required", http.StatusBadRequest)
		return
	}
	result, err := h.Customers.BulkCreate(req.Customers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var c domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.ID = id
	if err := h.Customers.Update(&c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	deleted, err := h.Customers.Delete(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if deleted == 0 {
		writeError(w, domain.ErrCustomerNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}

// --- Reviews ---

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Reviews.Create(r.Context(), &review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ReviewFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if v := q.Get("menu_item_id"); v != "" {
		filter.MenuItemID, _ = strconv.Atoi(v)
	}
	if v := q.Get("min_rating"); v != "" {
		filter.MinRating, _ = strconv.Atoi(v)
	}
	reviews, err := h.Reviews.List(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	review, err := h.Reviews.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) getItemRatings(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRange(w, r)
	if !ok {
		return
	}
	ratings, err := h.Reviews.ItemRatings(start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}

// --- Recipes ---

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	var rec domain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Recipes.Create(&rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) getRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Recipes.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rec, err := h.Recipes.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var rec domain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec.ID = id
	if err := h.Recipes.Update(&rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	deleted, err := h.Recipes.Delete(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if deleted == 0 {
		writeError(w, domain.ErrRecipeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Recipe deleted successfully"})
}

// --- Reports ---

func dateRange(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	start, end := q.Get("start_date"), q.Get("end_date")
	if start == "" || end == "" {
		http.Error(w, "start_date and end_date are required", http.StatusBadRequest)
		return "", "", false
	}
	return start, end, true
}

func writePDF(w http.ResponseWriter, filename string, pdf []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write(pdf)
}

func (h *Handler) customerOrderValuesReport(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRange(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("format") == "pdf" {
		pdf, err := h.Reports.CustomerOrderValuesPDF(start, end)
		if err != nil {
			writeError(w, err)
			return
		}
		writePDF(w, "customer-order-values.pdf", pdf)
		return
	}
	rows, err := h.Reports.CustomerOrderValues(start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) itemsOrderedReport(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRange(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("format") == "pdf" {
		pdf, err := h.Reports.ItemOrderCountsPDF(start, end)
		if err != nil {
			writeError(w, err)
			return
		}
		writePDF(w, "item-order-counts.pdf", pdf)
		return
	}
	rows, err := h.Reports.ItemOrderCounts(start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) itemRatingsReport(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRange(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("format") == "pdf" {
		pdf, err := h.Reports.ItemRatingsPDF(start, end)
		if err != nil {
			writeError(w, err)
			return
		}
		writePDF(w, "item-ratings.pdf", pdf)
		return
	}
	rows, err := h.Reports.ItemRatings(start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// --- Analytics ---

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	items, err := h.Analytics.TopItemsToday(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
