package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

// MemoryStore provides an in-memory implementation of every store
// interface for testing.
type MemoryStore struct {
	mu        sync.RWMutex
	jewelry   map[int64]models.Jewelry
	sales     map[int64]models.Sale
	customers map[int64]models.Customer
	users     map[int64]models.User
	rates     []models.Rate
	nextID    int64
	saleSeq   int64
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jewelry:   make(map[int64]models.Jewelry),
		sales:     make(map[int64]models.Sale),
		customers: make(map[int64]models.Customer),
		users:     make(map[int64]models.User),
	}
}

var (
	_ JewelryStore   = (*MemoryStore)(nil)
	_ AnalyticsStore = (*MemoryStore)(nil)
	_ SaleStore      = memorySales{}
	_ CustomerStore  = memoryCustomers{}
	_ UserStore      = memoryUsers{}
	_ RateStore      = memoryRates{}
)

func (s *MemoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

// Bundle returns a Store wired entirely to this MemoryStore.
func (s *MemoryStore) Bundle() *Store {
	return &Store{
		Jewelry:   s,
		Sales:     memorySales{s},
		Customers: memoryCustomers{s},
		Users:     memoryUsers{s},
		Rates:     memoryRates{s},
		Analytics: s,
	}
}

// Per-entity views over the shared state. The entity interfaces reuse
// method names (List, Get, Create...), so each gets its own adapter.

type memorySales struct{ s *MemoryStore }

func (v memorySales) List(ctx context.Context, f models.SaleFilter) ([]models.Sale, int, error) {
	return v.s.ListSales(ctx, f)
}
func (v memorySales) Get(ctx context.Context, id int64) (*models.Sale, error) {
	return v.s.GetSale(ctx, id)
}
func (v memorySales) Create(ctx context.Context, sale *models.Sale) error {
	return v.s.CreateSale(ctx, sale)
}
func (v memorySales) Update(ctx context.Context, sale *models.Sale) error {
	return v.s.UpdateSale(ctx, sale)
}
func (v memorySales) Delete(ctx context.Context, id int64) error {
	return v.s.DeleteSale(ctx, id)
}
func (v memorySales) Summary(ctx context.Context, start, end *time.Time) (models.SalesSummary, error) {
	return v.s.Summary(ctx, start, end)
}

type memoryCustomers struct{ s *MemoryStore }

func (v memoryCustomers) List(ctx context.Context) ([]models.Customer, error) {
	return v.s.ListCustomers(ctx)
}
func (v memoryCustomers) Get(ctx context.Context, id int64) (*models.Customer, error) {
	return v.s.GetCustomer(ctx, id)
}
func (v memoryCustomers) Create(ctx context.Context, c *models.Customer) error {
	return v.s.CreateCustomer(ctx, c)
}
func (v memoryCustomers) Update(ctx context.Context, c *models.Customer) error {
	return v.s.UpdateCustomer(ctx, c)
}
func (v memoryCustomers) Delete(ctx context.Context, id int64) error {
	return v.s.DeleteCustomer(ctx, id)
}

type memoryUsers struct{ s *MemoryStore }

func (v memoryUsers) List(ctx context.Context) ([]models.User, error) {
	return v.s.ListUsers(ctx)
}
func (v memoryUsers) Get(ctx context.Context, id int64) (*models.User, error) {
	return v.s.GetUser(ctx, id)
}
func (v memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return v.s.GetByEmail(ctx, email)
}
func (v memoryUsers) Create(ctx context.Context, u *models.User) error {
	return v.s.CreateUser(ctx, u)
}
func (v memoryUsers) Update(ctx context.Context, u *models.User) error {
	return v.s.UpdateUser(ctx, u)
}
func (v memoryUsers) Delete(ctx context.Context, id int64) error {
	return v.s.DeleteUser(ctx, id)
}
func (v memoryUsers) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	return v.s.BulkDeleteUsers(ctx, ids)
}
func (v memoryUsers) Count(ctx context.Context) (int, error) {
	return v.s.Count(ctx)
}

type memoryRates struct{ s *MemoryStore }

func (v memoryRates) Latest(ctx context.Context) (*models.Rate, error) {
	return v.s.Latest(ctx)
}
func (v memoryRates) Create(ctx context.Context, r *models.Rate) error {
	return v.s.CreateRate(ctx, r)
}
func (v memoryRates) Update(ctx context.Context, r *models.Rate) error {
	return v.s.UpdateRate(ctx, r)
}
func (v memoryRates) History(ctx context.Context, limit int) ([]models.Rate, error) {
	return v.s.History(ctx, limit)
}

// --- JewelryStore -----------------------------------------------------------

func (s *MemoryStore) List(ctx context.Context, f models.JewelryFilter) ([]models.Jewelry, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Jewelry{}
	for _, j := range s.jewelry {
		if f.Category != "" && j.Category != f.Category {
			continue
		}
		if f.Search != "" && !jewelryMatches(j, f.Search) {
			continue
		}
		matched = append(matched, j)
	}
	sort.Slice(matched, func(i, k int) bool {
		return matched[i].CreatedAt.After(matched[k].CreatedAt)
	})

	total := len(matched)
	start := (f.Page - 1) * f.Limit
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func jewelryMatches(j models.Jewelry, search string) bool {
	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(j.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(j.SKU), search) {
		return true
	}
	if j.Description != nil && strings.Contains(strings.ToLower(*j.Description), search) {
		return true
	}
	return false
}

func (s *MemoryStore) Get(ctx context.Context, id int64) (*models.Jewelry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jewelry[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &j, nil
}

func (s *MemoryStore) Create(ctx context.Context, j *models.Jewelry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.jewelry {
		if existing.SKU == j.SKU {
			return ErrDuplicateSKU
		}
	}
	j.ID = s.id()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	s.jewelry[j.ID] = *j
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, j *models.Jewelry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.jewelry[j.ID]
	if !ok {
		return ErrNotFound
	}
	for _, other := range s.jewelry {
		if other.ID != j.ID && other.SKU == j.SKU {
			return ErrDuplicateSKU
		}
	}
	j.CreatedAt = existing.CreatedAt
	j.UpdatedAt = time.Now().UTC()
	s.jewelry[j.ID] = *j
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jewelry[id]; !ok {
		return ErrNotFound
	}
	delete(s.jewelry, id)
	return nil
}

func (s *MemoryStore) Categories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, j := range s.jewelry {
		if !seen[j.Category] {
			seen[j.Category] = true
			categories = append(categories, j.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *MemoryStore) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := s.jewelry[id]; ok {
			delete(s.jewelry, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryStore) BulkUpdate(ctx context.Context, ids []int64, update JewelryBulkUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Empty() {
		return 0, nil
	}
	var updated int64
	for _, id := range ids {
		j, ok := s.jewelry[id]
		if !ok {
			continue
		}
		if update.Status != nil {
			j.Status = *update.Status
		}
		if update.IsActive != nil {
			j.IsActive = *update.IsActive
		}
		if update.Category != nil {
			j.Category = *update.Category
		}
		if update.LowStockThreshold != nil {
			j.LowStockThreshold = *update.LowStockThreshold
		}
		j.UpdatedAt = time.Now().UTC()
		s.jewelry[id] = j
		updated++
	}
	return updated, nil
}

func (s *MemoryStore) LowStock(ctx context.Context, threshold int, excludeOutOfStock bool) ([]models.AlertItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.AlertItem{}
	for _, j := range s.jewelry {
		if j.Quantity > threshold {
			continue
		}
		if excludeOutOfStock && j.Quantity == 0 {
			continue
		}
		items = append(items, alertItem(j))
	}
	sortAlerts(items)
	return items, nil
}

func (s *MemoryStore) OutOfStock(ctx context.Context) ([]models.AlertItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.AlertItem{}
	for _, j := range s.jewelry {
		if j.Quantity == 0 {
			items = append(items, alertItem(j))
		}
	}
	sortAlerts(items)
	return items, nil
}

func alertItem(j models.Jewelry) models.AlertItem {
	return models.AlertItem{
		ID:       j.ID,
		Name:     j.Name,
		SKU:      j.SKU,
		Category: j.Category,
		Quantity: j.Quantity,
	}
}

func sortAlerts(items []models.AlertItem) {
	sort.Slice(items, func(i, k int) bool { return items[i].ID < items[k].ID })
}

// --- SaleStore --------------------------------------------------------------

func (s *MemoryStore) ListSales(ctx context.Context, f models.SaleFilter) ([]models.Sale, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Sale{}
	for _, sale := range s.sales {
		if f.StartDate != nil && f.EndDate != nil {
			if sale.SaleDate.Before(*f.StartDate) || sale.SaleDate.After(*f.EndDate) {
				continue
			}
		}
		matched = append(matched, sale)
	}
	sort.Slice(matched, func(i, k int) bool {
		return matched[i].SaleDate.After(matched[k].SaleDate)
	})

	total := len(matched)
	start := (f.Page - 1) * f.Limit
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *MemoryStore) GetSale(ctx context.Context, id int64) (*models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sale, ok := s.sales[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sale, nil
}

func (s *MemoryStore) CreateSale(ctx context.Context, sale *models.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Conditional decrement first so nothing is written on failure
	for _, item := range sale.Items {
		j, ok := s.jewelry[item.JewelryID]
		if !ok || j.Quantity < item.Quantity {
			return ErrInsufficientStock
		}
	}
	for i := range sale.Items {
		j := s.jewelry[sale.Items[i].JewelryID]
		j.Quantity -= sale.Items[i].Quantity
		s.jewelry[j.ID] = j
	}

	s.saleSeq++
	sale.ID = s.id()
	sale.SaleNumber = models.FormatSaleNumber(s.saleSeq)
	now := time.Now().UTC()
	sale.CreatedAt = now
	sale.UpdatedAt = now
	for i := range sale.Items {
		sale.Items[i].ID = s.id()
		sale.Items[i].SaleID = sale.ID
	}

	if sale.CustomerID != nil {
		if c, ok := s.customers[*sale.CustomerID]; ok {
			d := sale.SaleDate
			c.LastPurchaseDate = &d
			s.customers[c.ID] = c
		}
	}

	s.sales[sale.ID] = *sale
	return nil
}

func (s *MemoryStore) UpdateSale(ctx context.Context, sale *models.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.sales[sale.ID]
	if !ok {
		return ErrNotFound
	}
	sale.SaleNumber = existing.SaleNumber
	sale.CreatedAt = existing.CreatedAt
	sale.UpdatedAt = time.Now().UTC()
	s.sales[sale.ID] = *sale
	return nil
}

func (s *MemoryStore) DeleteSale(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale, ok := s.sales[id]
	if !ok {
		return ErrNotFound
	}
	for _, item := range sale.Items {
		j, ok := s.jewelry[item.JewelryID]
		if !ok {
			continue // jewelry deleted since the sale, skip restore
		}
		j.Quantity += item.Quantity
		s.jewelry[j.ID] = j
	}
	delete(s.sales, id)
	return nil
}

func (s *MemoryStore) Summary(ctx context.Context, start, end *time.Time) (models.SalesSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary models.SalesSummary
	for _, sale := range s.sales {
		if start != nil && end != nil {
			if sale.SaleDate.Before(*start) || sale.SaleDate.After(*end) {
				continue
			}
		}
		summary.TotalSales += sale.TotalAmount
		summary.TotalSalesCount++
		for _, item := range sale.Items {
			summary.TotalQuantity += item.Quantity
		}
	}
	if summary.TotalSalesCount > 0 {
		summary.AverageSale = summary.TotalSales / float64(summary.TotalSalesCount)
	}
	return summary, nil
}

// --- CustomerStore ----------------------------------------------------------

func (s *MemoryStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := []models.Customer{}
	for _, c := range s.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, k int) bool { return customers[i].ID > customers[k].ID })
	return customers, nil
}

func (s *MemoryStore) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.id()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.customers[c.ID] = *c
	return nil
}

func (s *MemoryStore) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.customers[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	s.customers[c.ID] = *c
	return nil
}

func (s *MemoryStore) DeleteCustomer(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return ErrNotFound
	}
	delete(s.customers, id)
	return nil
}

// --- UserStore --------------------------------------------------------------

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []models.User{}
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, k int) bool { return users[i].ID > users[k].ID })
	return users, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	u.ID = s.id()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	for _, other := range s.users {
		if other.ID != u.ID && other.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *MemoryStore) BulkDeleteUsers(ctx context.Context, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := s.users[id]; ok {
			delete(s.users, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// --- RateStore --------------------------------------------------------------

func (s *MemoryStore) Latest(ctx context.Context) (*models.Rate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.rates) == 0 {
		return nil, ErrNotFound
	}
	r := s.rates[len(s.rates)-1]
	return &r, nil
}

func (s *MemoryStore) CreateRate(ctx context.Context, r *models.Rate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.id()
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.rates = append(s.rates, *r)
	return nil
}

func (s *MemoryStore) UpdateRate(ctx context.Context, r *models.Rate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rates {
		if s.rates[i].ID == r.ID {
			r.CreatedAt = s.rates[i].CreatedAt
			r.UpdatedAt = time.Now().UTC()
			s.rates[i] = *r
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) History(ctx context.Context, limit int) ([]models.Rate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := []models.Rate{}
	for i := len(s.rates) - 1; i >= 0 && len(history) < limit; i-- {
		history = append(history, s.rates[i])
	}
	return history, nil
}

// --- AnalyticsStore ---------------------------------------------------------

func (s *MemoryStore) SalesTotals(ctx context.Context, start, end time.Time) (models.SalesAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out models.SalesAnalytics
	for _, sale := range s.sales {
		if sale.SaleDate.Before(start) || sale.SaleDate.After(end) {
			continue
		}
		out.TotalRevenue += sale.TotalAmount
		out.TotalSales++
	}
	if out.TotalSales > 0 {
		out.AverageOrderValue = out.TotalRevenue / float64(out.TotalSales)
	}
	return out, nil
}

func (s *MemoryStore) InventoryTotals(ctx context.Context) (models.InventoryAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out models.InventoryAnalytics
	for _, j := range s.jewelry {
		out.TotalItems++
		out.TotalValue += j.UnitPrice
		out.TotalCost += j.CostPrice
		if j.Quantity <= 5 {
			out.LowStockItems++
		}
	}
	return out, nil
}

func (s *MemoryStore) CustomerCounts(ctx context.Context, activeSince time.Time) (models.CustomerAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out models.CustomerAnalytics
	for _, c := range s.customers {
		out.TotalCustomers++
		if c.LastPurchaseDate != nil && !c.LastPurchaseDate.Before(activeSince) {
			out.ActiveCustomers++
		}
	}
	return out, nil
}

func (s *MemoryStore) MonthlyRevenue(ctx context.Context, start, end time.Time) ([]models.MonthlyRevenueRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buckets := map[[2]int]float64{}
	for _, sale := range s.sales {
		if sale.SaleDate.Before(start) || sale.SaleDate.After(end) {
			continue
		}
		key := [2]int{sale.SaleDate.Year(), int(sale.SaleDate.Month())}
		buckets[key] += sale.TotalAmount
	}

	rows := []models.MonthlyRevenueRow{}
	for key, revenue := range buckets {
		rows = append(rows, models.MonthlyRevenueRow{Year: key[0], Month: key[1], Revenue: revenue})
	}
	sort.Slice(rows, func(i, k int) bool {
		if rows[i].Year != rows[k].Year {
			return rows[i].Year < rows[k].Year
		}
		return rows[i].Month < rows[k].Month
	})
	return rows, nil
}

func (s *MemoryStore) TopSelling(ctx context.Context, start, end time.Time, limit int) ([]models.TopSellingItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byJewelry := map[int64]*models.TopSellingItem{}
	for _, sale := range s.sales {
		if sale.SaleDate.Before(start) || sale.SaleDate.After(end) {
			continue
		}
		for _, item := range sale.Items {
			j, ok := s.jewelry[item.JewelryID]
			if !ok {
				continue
			}
			agg, ok := byJewelry[item.JewelryID]
			if !ok {
				agg = &models.TopSellingItem{JewelryID: item.JewelryID, JewelryName: j.Name}
				byJewelry[item.JewelryID] = agg
			}
			agg.Quantity += item.Quantity
			agg.Revenue += item.TotalPrice
		}
	}

	items := []models.TopSellingItem{}
	for _, agg := range byJewelry {
		items = append(items, *agg)
	}
	sort.Slice(items, func(i, k int) bool { return items[i].Revenue > items[k].Revenue })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *MemoryStore) CategoryBreakdown(ctx context.Context) ([]models.CategoryCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	for _, j := range s.jewelry {
		counts[j.Category]++
	}
	return toCategoryCounts(counts), nil
}

func (s *MemoryStore) MetalTypeBreakdown(ctx context.Context) ([]models.CategoryCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	for _, j := range s.jewelry {
		metal := "unknown"
		if j.MetalType != nil && *j.MetalType != "" {
			metal = *j.MetalType
		}
		counts[metal]++
	}
	return toCategoryCounts(counts), nil
}

func toCategoryCounts(counts map[string]int) []models.CategoryCount {
	out := []models.CategoryCount{}
	for category, count := range counts {
		out = append(out, models.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Category < out[k].Category })
	return out
}
