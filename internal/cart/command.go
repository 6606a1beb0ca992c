package cart

import "storefront/internal/domain"

// Command is one of AddItem, RemoveItem, UpdateQuantity or Clear.
type Command interface {
	Name() string
	isCommand()
}

type AddItem struct {
	Product domain.Product
}

type RemoveItem struct {
	ProductID string
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes the line.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

type Clear struct{}

func (AddItem) Name() string        { return "add_item" }
func (RemoveItem) Name() string     { return "remove_item" }
func (UpdateQuantity) Name() string { return "update_quantity" }
func (Clear) Name() string          { return "clear" }

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (Clear) isCommand()          {}

// Reduce applies cmd to s and returns the resulting state. s is left untouched.
// Commands that change nothing return s as is, version included.
func Reduce(s State, cmd Command) State {
	switch c := cmd.(type) {
	case AddItem:
		return addItem(s, c.Product)
	case RemoveItem:
		return removeItem(s, c.ProductID)
	case UpdateQuantity:
		if c.Quantity <= 0 {
			return removeItem(s, c.ProductID)
		}
		return setQuantity(s, c.ProductID, c.Quantity)
	case Clear:
		if s.IsEmpty() {
			return s
		}
		return newState(nil, s.version+1)
	default:
		return s
	}
}

func addItem(s State, product domain.Product) State {
	items := s.Items()
	if i := s.indexOf(product.ID); i >= 0 {
		items[i].Quantity++
	} else {
		items = append(items, LineItem{Product: product, Quantity: 1})
	}
	return newState(items, s.version+1)
}

func removeItem(s State, productID string) State {
	i := s.indexOf(productID)
	if i < 0 {
		return s
	}
	items := make([]LineItem, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	return newState(items, s.version+1)
}

func setQuantity(s State, productID string, quantity int) State {
	i := s.indexOf(productID)
	if i < 0 || s.items[i].Quantity == quantity {
		return s
	}
	items := s.Items()
	items[i].Quantity = quantity
	return newState(items, s.version+1)
}
