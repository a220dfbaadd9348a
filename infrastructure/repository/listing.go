package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/sellkit/listing-assistant-api/infrastructure/database/postgres"
	"github.com/sellkit/listing-assistant-api/internal/domain"
)

const listingsTable = "listings"

type ListingRepository interface {
	Save(listing *domain.Listing) error
	GetByID(id string) (*domain.Listing, error)
	List(filters domain.ListingFilters) ([]*domain.Listing, error)
	Update(listing *domain.Listing) error
	Delete(id string) (bool, error)
}

type listingRepository struct {
	conn *postgres.Connection
}

func NewListingRepository(conn *postgres.Connection) ListingRepository {
	return &listingRepository{
		conn: conn,
	}
}

func (r *listingRepository) Save(listing *domain.Listing) error {
	pricingJSON, copyJSON, resultsJSON, err := marshalListingPayloads(listing)
	if err != nil {
		return err
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(listingsTable).
		Columns(
			"id", "item_name", "category", "brand", "condition", "description",
			"image_paths", "pricing", "listing_copy", "status", "posted_to", "post_results",
		).
		Values(
			listing.ID,
			listing.ItemName,
			listing.Category,
			listing.Brand,
			listing.Condition,
			listing.Description,
			pq.Array(listing.ImagePaths),
			pricingJSON,
			copyJSON,
			listing.Status,
			pq.Array(listing.PostedTo),
			resultsJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building insert query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "inserting listing")
	}

	return nil
}

func (r *listingRepository) GetByID(id string) (*domain.Listing, error) {
	query, args, err := squirrel.
		Select(listingColumns()...).
		From(listingsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building select query")
	}

	listing, err := scanListing(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scanning listing")
	}

	return listing, nil
}

func (r *listingRepository) List(filters domain.ListingFilters) ([]*domain.Listing, error) {
	builder := squirrel.
		Select(listingColumns()...).
		From(listingsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filters.Status})
	}
	if filters.CreatedAfter != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": *filters.CreatedAfter})
	}
	if filters.Limit > 0 {
		builder = builder.Limit(uint64(filters.Limit))
	}
	if filters.Offset > 0 {
		builder = builder.Offset(uint64(filters.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building list query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying listings")
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning listing row")
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating listing rows")
	}

	return listings, nil
}

func (r *listingRepository) Update(listing *domain.Listing) error {
	pricingJSON, copyJSON, resultsJSON, err := marshalListingPayloads(listing)
	if err != nil {
		return err
	}

	query, args, err := squirrel.StatementBuilder.
		Update(listingsTable).
		Set("item_name", listing.ItemName).
		Set("category", listing.Category).
		Set("brand", listing.Brand).
		Set("condition", listing.Condition).
		Set("description", listing.Description).
		Set("image_paths", pq.Array(listing.ImagePaths)).
		Set("pricing", pricingJSON).
		Set("listing_copy", copyJSON).
		Set("status", listing.Status).
		Set("posted_to", pq.Array(listing.PostedTo)).
		Set("post_results", resultsJSON).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": listing.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building update query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "updating listing")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading affected rows")
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *listingRepository) Delete(id string) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Delete(listingsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "building delete query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, errors.Wrap(err, "deleting listing")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "reading affected rows")
	}

	return affected > 0, nil
}

func listingColumns() []string {
	return []string{
		"id", "item_name", "category", "brand", "condition", "description",
		"image_paths", "pricing", "listing_copy", "status", "posted_to", "post_results",
		"created_at", "updated_at",
	}
}

func marshalListingPayloads(listing *domain.Listing) ([]byte, []byte, []byte, error) {
	var pricingJSON, copyJSON, resultsJSON []byte
	var err error

	if listing.Pricing != nil {
		if pricingJSON, err = json.Marshal(listing.Pricing); err != nil {
			return nil, nil, nil, errors.Wrap(err, "marshaling pricing")
		}
	}
	if listing.Copy != nil {
		if copyJSON, err = json.Marshal(listing.Copy); err != nil {
			return nil, nil, nil, errors.Wrap(err, "marshaling listing copy")
		}
	}
	if listing.PostResults != nil {
		if resultsJSON, err = json.Marshal(listing.PostResults); err != nil {
			return nil, nil, nil, errors.Wrap(err, "marshaling post results")
		}
	}

	return pricingJSON, copyJSON, resultsJSON, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	listing := &domain.Listing{}

	var (
		brand       sql.NullString
		imagePaths  pq.StringArray
		postedTo    pq.StringArray
		pricingJSON []byte
		copyJSON    []byte
		resultsJSON []byte
	)

	err := row.Scan(
		&listing.ID,
		&listing.ItemName,
		&listing.Category,
		&brand,
		&listing.Condition,
		&listing.Description,
		&imagePaths,
		&pricingJSON,
		&copyJSON,
		&listing.Status,
		&postedTo,
		&resultsJSON,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	listing.Brand = brand.String
	listing.ImagePaths = imagePaths
	listing.PostedTo = postedTo

	if len(pricingJSON) > 0 {
		if err := json.Unmarshal(pricingJSON, &listing.Pricing); err != nil {
			return nil, errors.Wrap(err, "unmarshaling pricing")
		}
	}
	if len(copyJSON) > 0 {
		if err := json.Unmarshal(copyJSON, &listing.Copy); err != nil {
			return nil, errors.Wrap(err, "unmarshaling listing copy")
		}
	}
	if len(resultsJSON) > 0 {
		if err := json.Unmarshal(resultsJSON, &listing.PostResults); err != nil {
			return nil, errors.Wrap(err, "unmarshaling post results")
		}
	}

	return listing, nil
}
