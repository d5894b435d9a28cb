package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/utafrali/storefront/pkg/kafka"

	"github.com/utafrali/storefront/internal/domain"
)

// Kafka topics for storefront domain events.
var (
	TopicOrderCreated       = pkgkafka.Topic("order", "created")
	TopicOrderStatusChanged = pkgkafka.Topic("order", "status_changed")
	TopicProductCreated     = pkgkafka.Topic("product", "created")
	TopicProductUpdated     = pkgkafka.Topic("product", "updated")
	TopicProductDeleted     = pkgkafka.Topic("product", "deleted")
)

// Aggregate type constants.
const (
	AggregateTypeOrder   = "order"
	AggregateTypeProduct = "product"
)

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// OrderStatusChangedData is the payload for an order.status_changed event.
type OrderStatusChangedData struct {
	OrderID   string `json:"order_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// ProductDeletedData is the payload for a product.deleted event.
type ProductDeletedData struct {
	ProductID string `json:"product_id"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishOrderCreated publishes an order.created event with the full order snapshot.
func (p *Producer) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	evt, err := pkgkafka.NewEvent("order.created", order.ID, AggregateTypeOrder, SourceStorefront, order)
	if err != nil {
		return fmt.Errorf("build order.created event: %w", err)
	}
	return p.kafka.Publish(ctx, TopicOrderCreated, evt)
}

// PublishOrderStatusChanged publishes an order.status_changed event.
func (p *Producer) PublishOrderStatusChanged(ctx context.Context, orderID, oldStatus, newStatus string) error {
	data := OrderStatusChangedData{OrderID: orderID, OldStatus: oldStatus, NewStatus: newStatus}
	evt, err := pkgkafka.NewEvent("order.status_changed", orderID, AggregateTypeOrder, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("build order.status_changed event: %w", err)
	}
	return p.kafka.Publish(ctx, TopicOrderStatusChanged, evt)
}

// PublishProductCreated publishes a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	evt, err := pkgkafka.NewEvent("product.created", product.ID, AggregateTypeProduct, SourceStorefront, product)
	if err != nil {
		return fmt.Errorf("build product.created event: %w", err)
	}
	return p.kafka.Publish(ctx, TopicProductCreated, evt)
}

// PublishProductUpdated publishes a product.updated event.
func (p *Producer) PublishProductUpdated(ctx context.Context, product *domain.Product) error {
	evt, err := pkgkafka.NewEvent("product.updated", product.ID, AggregateTypeProduct, SourceStorefront, product)
	if err != nil {
		return fmt.Errorf("build product.updated event: %w", err)
	}
	return p.kafka.Publish(ctx, TopicProductUpdated, evt)
}

// PublishProductDeleted publishes a product.deleted event.
func (p *Producer) PublishProductDeleted(ctx context.Context, productID string) error {
	data := ProductDeletedData{ProductID: productID}
	evt, err := pkgkafka.NewEvent("product.deleted", productID, AggregateTypeProduct, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("build product.deleted event: %w", err)
	}
	return p.kafka.Publish(ctx, TopicProductDeleted, evt)
}
