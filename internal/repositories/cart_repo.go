package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/calebmorton/storefront/internal/database"
	"github.com/calebmorton/storefront/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(db *database.DB) *CartRepository {
	return &CartRepository{pool: db.Pool}
}

// GetItems returns a user's cart lines joined with current product data.
func (r *CartRepository) GetItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	query := `
		SELECT ci.product_id, p.name, p.price, p.image_url, ci.quantity, ci.added_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.added_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}
	defer rows.Close()

	items := make([]models.CartItem, 0)
	for rows.Next() {
		var item models.CartItem
		err := rows.Scan(
			&item.ProductID, &item.ProductName, &item.Price, &item.ImageURL,
			&item.Quantity, &item.AddedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// UpsertItem adds a product to the cart or replaces the quantity of an
// existing line.
func (r *CartRepository) UpsertItem(ctx context.Context, userID, productID string, quantity int) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = $3
	`

	_, err := r.pool.Exec(ctx, query, userID, productID, quantity, time.Now())
	return database.MapPostgresError(err)
}

// RemoveItem deletes a cart line. Removing an absent line is not an error.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
	_, err := r.pool.Exec(ctx, query, userID, productID)
	return database.MapPostgresError(err)
}
