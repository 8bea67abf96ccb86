package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/lifecycle"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID              string `dynamodbav:"id"`
	OrganizationID  string `dynamodbav:"organization_id,omitempty"`
	Date            string `dynamodbav:"date"`
	StartDate       string `dynamodbav:"start_date,omitempty"`
	CompletedDate   string `dynamodbav:"completed_date,omitempty"`
	ClientID        string `dynamodbav:"client_id"`
	ClientName      string `dynamodbav:"client_name,omitempty"`
	TechnicianID    string `dynamodbav:"technician_id"`
	TechnicianName  string `dynamodbav:"technician_name,omitempty"`
	GrossValue      string `dynamodbav:"gross_value"`
	OperationalCost string `dynamodbav:"operational_cost"`
	HasInvoice      bool   `dynamodbav:"has_invoice"`
	TaxAmount       string `dynamodbav:"tax_amount"`
	InvoiceNumber   string `dynamodbav:"invoice_number"`
	Status          string `dynamodbav:"status"`
	PaymentStatus   string `dynamodbav:"payment_status"`
	Description     string `dynamodbav:"description"`
	Notes           string `dynamodbav:"notes"`
	Location        string `dynamodbav:"location"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing scans the table; organization filtering is a scan filter.
type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultServicesTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context, filter interfaces.ServiceFilter) ([]entities.Service, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if cond, names, values := scanFilter(filter); cond != "" {
		input.FilterExpression = aws.String(cond)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	services := make([]entities.Service, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			services = append(services, fromServiceItem(it))
		}
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, id string, patch lifecycle.ServicePatch) (entities.Service, error) {
	expr := buildServiceUpdate(patch, r.now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr.String()),
		ExpressionAttributeValues: expr.values,
		ExpressionAttributeNames:  mergeNames(expr.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

// MarkPaid sets payment_status to pago only while the stored status differs,
// so concurrent collections write it at most once. A missing or already paid
// service reports false.
func (r *ServiceDynamoRepository) MarkPaid(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, markPaidInput(r.tableName, id, r.now()))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func markPaidInput(tableName, id string, now time.Time) *dynamodb.UpdateItemInput {
	patch := lifecycle.ServicePatch{PaymentStatus: lifecycle.SetTo(entities.ServicePaymentPago)}
	expr := buildServiceUpdate(patch, now)

	return &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #payment_status <> :payment_status"),
		UpdateExpression:          aws.String(expr.String()),
		ExpressionAttributeValues: expr.values,
		ExpressionAttributeNames:  mergeNames(expr.names, map[string]string{"#id": "id"}),
	}
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// scanFilter compares dates as strings; DateLayout sorts lexicographically.
func scanFilter(filter interfaces.ServiceFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if filter.OrganizationID != "" {
		conds = append(conds, "#org = :org")
		names["#org"] = "organization_id"
		values[":org"] = stringValue(filter.OrganizationID)
	}
	if !filter.From.IsZero() {
		conds = append(conds, "#date >= :from")
		names["#date"] = "date"
		values[":from"] = stringValue(filter.From.Format(entities.DateLayout))
	}
	if !filter.To.IsZero() {
		conds = append(conds, "#date <= :to")
		names["#date"] = "date"
		values[":to"] = stringValue(filter.To.Format(entities.DateLayout))
	}
	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), names, values
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:              s.ID,
		OrganizationID:  s.OrganizationID,
		Date:            s.Date.Format(entities.DateLayout),
		StartDate:       formatOptionalTime(s.StartDate),
		CompletedDate:   formatOptionalTime(s.CompletedDate),
		ClientID:        s.ClientID,
		ClientName:      s.ClientName,
		TechnicianID:    s.TechnicianID,
		TechnicianName:  s.TechnicianName,
		GrossValue:      formatAmount(s.GrossValue),
		OperationalCost: formatAmount(s.OperationalCost),
		HasInvoice:      s.HasInvoice,
		TaxAmount:       formatAmount(s.TaxAmount),
		InvoiceNumber:   s.InvoiceNumber,
		Status:          string(s.Status),
		PaymentStatus:   string(s.PaymentStatus),
		Description:     s.Description,
		Notes:           s.Notes,
		Location:        s.Location,
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	date, _ := time.Parse(entities.DateLayout, it.Date)
	return entities.Service{
		ID:              it.ID,
		OrganizationID:  it.OrganizationID,
		Date:            date,
		StartDate:       parseOptionalTime(it.StartDate),
		CompletedDate:   parseOptionalTime(it.CompletedDate),
		ClientID:        it.ClientID,
		ClientName:      it.ClientName,
		TechnicianID:    it.TechnicianID,
		TechnicianName:  it.TechnicianName,
		GrossValue:      parseAmount(it.GrossValue),
		OperationalCost: parseAmount(it.OperationalCost),
		HasInvoice:      it.HasInvoice,
		TaxAmount:       parseAmount(it.TaxAmount),
		InvoiceNumber:   it.InvoiceNumber,
		Status:          entities.ServiceStatus(it.Status),
		PaymentStatus:   entities.ServicePaymentStatus(it.PaymentStatus),
		Description:     it.Description,
		Notes:           it.Notes,
		Location:        it.Location,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
