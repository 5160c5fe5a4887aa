package repository

import (
	"context"
	"sort"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	defaultOptionsTableName  = "print_options"

	optionKindSize  = "size"
	optionKindFrame = "frame"
)

type productItem struct {
	ID           string  `dynamodbav:"id"`
	Title        string  `dynamodbav:"title"`
	BasePrice    float64 `dynamodbav:"base_price"`
	EditionType  string  `dynamodbav:"edition_type"`
	EditionTotal int     `dynamodbav:"edition_total"`
	PhotoURL     string  `dynamodbav:"photo_url"`
	PhotoWidth   int     `dynamodbav:"photo_width"`
	PhotoHeight  int     `dynamodbav:"photo_height"`
	Orientation  string  `dynamodbav:"orientation"`
}

type optionItem struct {
	ID         string  `dynamodbav:"id"`
	Kind       string  `dynamodbav:"kind"`
	Name       string  `dynamodbav:"name"`
	Dimensions string  `dynamodbav:"dimensions,omitempty"`
	ColorToken string  `dynamodbav:"color_token,omitempty"`
	Price      float64 `dynamodbav:"price"`
	Position   int     `dynamodbav:"position"`
}

// CatalogDynamoRepository reads products and print options from DynamoDB.
//
// Table requirements:
//   - products: PK id (string)
//   - print_options: PK id (string), attribute kind ("size" | "frame"),
//     attribute position for display order (position 0 is the default option)

type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	productsTable string
	optionsTable  string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:           ddb,
		productsTable: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		optionsTable:  getenvDefault("PRINT_OPTIONS_TABLE", defaultOptionsTableName),
	}
}

func (r *CatalogDynamoRepository) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.productsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *CatalogDynamoRepository) ListProducts(ctx context.Context) ([]entities.Product, error) {
	products := make([]entities.Product, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.productsTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			products = append(products, fromProductItem(it))
		}
	}

	sort.Slice(products, func(i, j int) bool { return products[i].Title < products[j].Title })
	return products, nil
}

func (r *CatalogDynamoRepository) GetOptions(ctx context.Context) (entities.CatalogOptions, error) {
	var raw []optionItem

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.optionsTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return entities.CatalogOptions{}, err
		}
		var items []optionItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return entities.CatalogOptions{}, err
		}
		raw = append(raw, items...)
	}

	sort.Slice(raw, func(i, j int) bool { return raw[i].Position < raw[j].Position })

	var opts entities.CatalogOptions
	for _, it := range raw {
		switch it.Kind {
		case optionKindSize:
			opts.Sizes = append(opts.Sizes, entities.SizeOption{
				ID:         it.ID,
				Name:       it.Name,
				Dimensions: it.Dimensions,
				Price:      it.Price,
			})
		case optionKindFrame:
			opts.Frames = append(opts.Frames, entities.FrameOption{
				ID:         it.ID,
				Name:       it.Name,
				ColorToken: it.ColorToken,
				Price:      it.Price,
			})
		}
	}
	return opts, nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:           it.ID,
		Title:        it.Title,
		BasePrice:    it.BasePrice,
		EditionType:  entities.EditionType(it.EditionType),
		EditionTotal: it.EditionTotal,
		Photo: entities.Photo{
			URL:         it.PhotoURL,
			Width:       it.PhotoWidth,
			Height:      it.PhotoHeight,
			Orientation: it.Orientation,
		},
	}
}
