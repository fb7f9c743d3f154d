package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
	"gorm.io/gorm"
)

type fakeCartRepo struct {
	items  map[int]*entities.CartItem
	nextID int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[int]*entities.CartItem{}, nextID: 1}
}

func (f *fakeCartRepo) GetCartItems(ctx context.Context, customerID int, sessionID string) ([]entities.CartItem, error) {
	var out []entities.CartItem
	for _, item := range f.items {
		if customerID > 0 && item.CustomerID == customerID {
			out = append(out, *item)
		}
		if customerID == 0 && item.CustomerID == 0 && item.SessionID == sessionID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) FindCartItemByID(ctx context.Context, cartID int) (*entities.CartItem, error) {
	if item, ok := f.items[cartID]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCartRepo) AddCartItem(ctx context.Context, item *entities.CartItem) error {
	item.CartID = f.nextID
	f.nextID++
	f.items[item.CartID] = item
	return nil
}

func (f *fakeCartRepo) UpdateCartItemQuantity(ctx context.Context, cartID, quantity int) error {
	item, ok := f.items[cartID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	return nil
}

func (f *fakeCartRepo) RemoveCartItem(ctx context.Context, cartID int) error {
	delete(f.items, cartID)
	return nil
}

func (f *fakeCartRepo) ClearCart(ctx context.Context, customerID int, sessionID string) error {
	for id, item := range f.items {
		if customerID > 0 && item.CustomerID == customerID {
			delete(f.items, id)
		}
		if customerID == 0 && item.CustomerID == 0 && item.SessionID == sessionID {
			delete(f.items, id)
		}
	}
	return nil
}

type fakeProductRepo struct {
	products map[int]*entities.Product
}

func newFakeProductRepo(products ...*entities.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[int]*entities.Product{}}
	for _, p := range products {
		repo.products[p.ProductID] = p
	}
	return repo
}

func (f *fakeProductRepo) GetProducts(ctx context.Context, skip, limit int, filter repositories.ProductFilter) ([]entities.Product, int64, error) {
	var out []entities.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) FindProductByID(ctx context.Context, id int) (*entities.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, product *entities.Product) error { return nil }
func (f *fakeProductRepo) UpdateProduct(ctx context.Context, product *entities.Product) error { return nil }
func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id int) error                    { return nil }

func testProduct() *entities.Product {
	return &entities.Product{
		ProductID: 88,
		Model:     "SKU-88",
		Price:     19.50,
		Status:    true,
		Descriptions: []entities.ProductDescription{
			{ProductID: 88, LanguageID: 1, Name: "Canvas Shoes"},
		},
	}
}

func TestCartAddAndGet(t *testing.T) {
	uc := NewCartUseCase(newFakeCartRepo(), newFakeProductRepo(testProduct()))
	ctx := context.Background()

	item, err := uc.AddItem(ctx, 0, "sess-1", 88, 2)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Quantity != 2 || item.SessionID != "sess-1" || item.Option != "{}" {
		t.Errorf("item = %+v", item)
	}

	summary, err := uc.GetCart(ctx, 0, "sess-1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if summary.TotalItems != 2 {
		t.Errorf("total items = %d, want 2", summary.TotalItems)
	}
	if summary.TotalPrice != 39.0 {
		t.Errorf("total price = %v, want 39.0", summary.TotalPrice)
	}
	if len(summary.Items) != 1 || summary.Items[0].Name != "Canvas Shoes" {
		t.Errorf("items = %+v", summary.Items)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	uc := NewCartUseCase(newFakeCartRepo(), newFakeProductRepo())

	if _, err := uc.AddItem(context.Background(), 0, "sess-1", 999, 1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("got %v, want ErrRecordNotFound", err)
	}
}

func TestCartQuantityFloor(t *testing.T) {
	uc := NewCartUseCase(newFakeCartRepo(), newFakeProductRepo(testProduct()))

	item, err := uc.AddItem(context.Background(), 0, "sess-1", 88, 0)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
}

func TestCartUpdateToZeroRemoves(t *testing.T) {
	cart := newFakeCartRepo()
	uc := NewCartUseCase(cart, newFakeProductRepo(testProduct()))
	ctx := context.Background()

	item, err := uc.AddItem(ctx, 0, "sess-1", 88, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := uc.UpdateItem(ctx, 0, "sess-1", item.CartID, 0); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if len(cart.items) != 0 {
		t.Errorf("item not removed on zero quantity")
	}
}

// A guest session must not touch another session's items, and a
// customer must not touch another customer's items.
func TestCartOwnership(t *testing.T) {
	cart := newFakeCartRepo()
	uc := NewCartUseCase(cart, newFakeProductRepo(testProduct()))
	ctx := context.Background()

	guestItem, err := uc.AddItem(ctx, 0, "sess-a", 88, 1)
	if err != nil {
		t.Fatalf("AddItem guest: %v", err)
	}
	customerItem, err := uc.AddItem(ctx, 42, "", 88, 1)
	if err != nil {
		t.Fatalf("AddItem customer: %v", err)
	}

	if err := uc.RemoveItem(ctx, 0, "sess-b", guestItem.CartID); !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("other session: got %v, want ErrForbidden", err)
	}
	if err := uc.RemoveItem(ctx, 7, "", customerItem.CartID); !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("other customer: got %v, want ErrForbidden", err)
	}
	if err := uc.UpdateItem(ctx, 0, "sess-a", customerItem.CartID, 2); !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("guest touching customer item: got %v, want ErrForbidden", err)
	}

	if err := uc.RemoveItem(ctx, 0, "sess-a", guestItem.CartID); err != nil {
		t.Errorf("owner removal failed: %v", err)
	}
}
