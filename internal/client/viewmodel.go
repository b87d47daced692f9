package client

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/product-inventory/internal/model"
)

// State enumerates the view-model's modes. Browsing shows the table with an
// idle create-mode form; Editing means the form was pre-filled from a row;
// Submitting covers an in-flight create or update.
type State int

const (
	Browsing State = iota
	Editing
	Submitting
)

// ProductAPI is the slice of Session the view-model depends on. Keeping it
// an interface lets tests drive the state machine with a fake transport.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// Form holds the editable fields. CreatedDate is a time.Time on the form
// side (a date picker hands over a full timestamp) and is normalized to a
// calendar-date string right before submission.
type Form struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    string
	IsActive    bool
	CreatedDate time.Time
}

// ViewModel is the client-side table/form state machine. The snapshot it
// holds is the single source of truth for displayed rows: every write is
// followed by a full reload from the server, never a local patch, so the
// view always reflects server state exactly.
type ViewModel struct {
	api ProductAPI

	state    State
	products []model.Product
	form     Form
	banner   string
}

// NewViewModel builds a Browsing view-model with an empty snapshot and a
// fresh create-mode form.
func NewViewModel(api ProductAPI) *ViewModel {
	vm := &ViewModel{api: api}
	vm.ResetForm()
	return vm
}

func (vm *ViewModel) State() State               { return vm.state }
func (vm *ViewModel) Form() Form                 { return vm.form }
func (vm *ViewModel) SetForm(f Form)             { vm.form = f }
func (vm *ViewModel) Banner() string             { return vm.banner }
func (vm *ViewModel) Products() []model.Product  { return vm.products }

// LoadProducts fetches the full list and replaces the local snapshot.
func (vm *ViewModel) LoadProducts(ctx context.Context) error {
	items, err := vm.api.ListProducts(ctx)
	if err != nil {
		vm.banner = err.Error()
		return err
	}
	vm.products = items
	vm.banner = ""
	return nil
}

// EditProduct copies a row's fields into the form and switches to Editing.
func (vm *ViewModel) EditProduct(p model.Product) {
	created, err := time.Parse(model.DateLayout, p.CreatedDate)
	if err != nil {
		created = time.Now().UTC()
	}
	vm.form = Form{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		IsActive:    p.IsActive,
		CreatedDate: created,
	}
	vm.state = Editing
}

// ResetForm clears the form back to create-mode defaults and returns the
// view-model to Browsing.
func (vm *ViewModel) ResetForm() {
	vm.form = Form{IsActive: true, CreatedDate: time.Now().UTC()}
	vm.state = Browsing
}

// SaveProduct validates the form, dispatches create or update depending on
// the current mode, and reloads the full list on success. A validation
// failure sets the banner and never touches the network; a request failure
// keeps the current state with the error in the banner.
func (vm *ViewModel) SaveProduct(ctx context.Context) error {
	if strings.TrimSpace(vm.form.Name) == "" ||
		strings.TrimSpace(vm.form.Description) == "" ||
		strings.TrimSpace(vm.form.Category) == "" {
		vm.banner = "Please fill in all required fields"
		return &ValidationError{Message: vm.banner}
	}

	in := model.ProductInput{
		Name:        vm.form.Name,
		Description: vm.form.Description,
		Price:       vm.form.Price,
		Quantity:    vm.form.Quantity,
		Category:    vm.form.Category,
		IsActive:    vm.form.IsActive,
		CreatedDate: vm.form.CreatedDate.Format(model.DateLayout),
	}

	editing := vm.State() == Editing
	vm.state = Submitting

	var err error
	if editing {
		_, err = vm.api.UpdateProduct(ctx, vm.form.ID, in)
	} else {
		_, err = vm.api.CreateProduct(ctx, in)
	}
	if err != nil {
		// Back to the state the submission came from, banner set.
		if editing {
			vm.state = Editing
		} else {
			vm.state = Browsing
		}
		vm.banner = err.Error()
		return err
	}

	vm.ResetForm()
	return vm.LoadProducts(ctx)
}

// DeleteProduct removes a product then reloads the list so the snapshot
// mirrors the store.
func (vm *ViewModel) DeleteProduct(ctx context.Context, id int64) error {
	if err := vm.api.DeleteProduct(ctx, id); err != nil {
		vm.banner = err.Error()
		return err
	}
	return vm.LoadProducts(ctx)
}

// Filter returns the snapshot rows whose text fields contain the query,
// case-insensitively. It never triggers a network call.
func (vm *ViewModel) Filter(query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return vm.products
	}
	var out []model.Product
	for _, p := range vm.products {
		haystack := strings.ToLower(strings.Join([]string{
			p.Name, p.Description, p.Category, p.CreatedDate,
			strconv.FormatInt(p.ID, 10),
		}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders a copy of the given rows by the named column. Unknown columns
// leave the order untouched. Local only, like Filter.
func (vm *ViewModel) Sort(rows []model.Product, column string, ascending bool) []model.Product {
	out := make([]model.Product, len(rows))
	copy(out, rows)
	var less func(i, j int) bool
	switch column {
	case "id":
		less = func(i, j int) bool { return out[i].ID < out[j].ID }
	case "name":
		less = func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) }
	case "price":
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case "quantity":
		less = func(i, j int) bool { return out[i].Quantity < out[j].Quantity }
	case "category":
		less = func(i, j int) bool { return strings.ToLower(out[i].Category) < strings.ToLower(out[j].Category) }
	case "createdDate":
		less = func(i, j int) bool { return out[i].CreatedDate < out[j].CreatedDate }
	default:
		return out
	}
	if !ascending {
		orig := less
		less = func(i, j int) bool { return orig(j, i) }
	}
	sort.SliceStable(out, less)
	return out
}

// Page slices rows for the given zero-based page index and size.
func (vm *ViewModel) Page(rows []model.Product, index, size int) []model.Product {
	if size <= 0 || index < 0 {
		return nil
	}
	start := index * size
	if start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
