package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	table  string
	items  map[string]map[string]types.AttributeValue
	getErr error
	putErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.table = aws.ToString(in.TableName)
	key := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.table = aws.ToString(in.TableName)
	key := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestSecretDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is empty", func(t *testing.T) {
		repo := NewSecretDynamoRepository(newFakeDynamo(), "")
		v, err := repo.Get(ctx, "ZOHO_ORG_ID")
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("put then get", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewSecretDynamoRepository(ddb, "custom_secrets")
		repo.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

		require.NoError(t, repo.Put(ctx, "ZOHO_REFRESH_TOKEN", "rt-1"))
		assert.Equal(t, "custom_secrets", ddb.table)
		assert.Equal(t, "2024-03-01T10:00:00Z", ddb.items["ZOHO_REFRESH_TOKEN"]["updated_at"].(*types.AttributeValueMemberS).Value)

		v, err := repo.Get(ctx, "ZOHO_REFRESH_TOKEN")
		require.NoError(t, err)
		assert.Equal(t, "rt-1", v)

		require.NoError(t, repo.Put(ctx, "ZOHO_REFRESH_TOKEN", "rt-2"))
		v, err = repo.Get(ctx, "ZOHO_REFRESH_TOKEN")
		require.NoError(t, err)
		assert.Equal(t, "rt-2", v)
	})

	t.Run("default table", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewSecretDynamoRepository(ddb, "")
		_, _ = repo.Get(ctx, "x")
		assert.Equal(t, defaultSecretsTableName, ddb.table)
	})

	t.Run("backend errors propagate", func(t *testing.T) {
		boom := errors.New("throttled")
		ddb := newFakeDynamo()
		ddb.getErr, ddb.putErr = boom, boom
		repo := NewSecretDynamoRepository(ddb, "")

		_, err := repo.Get(ctx, "ZOHO_ORG_ID")
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, repo.Put(ctx, "ZOHO_ORG_ID", "1"), boom)
	})
}

func TestEnvSecretRepository(t *testing.T) {
	ctx := context.Background()
	t.Setenv("STRIPE_WEBHOOK_KEY", "whsec_env")
	t.Setenv("ZOHO_REFRESH_TOKEN", "rt-env")

	repo := NewEnvSecretRepository()

	v, err := repo.Get(ctx, "STRIPE_WEBHOOK_KEY")
	require.NoError(t, err)
	assert.Equal(t, "whsec_env", v)

	v, err = repo.Get(ctx, "NOT_SET_ANYWHERE_IN_TESTS")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, repo.Put(ctx, "ZOHO_REFRESH_TOKEN", "rt-new"))
	v, err = repo.Get(ctx, "ZOHO_REFRESH_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "rt-new", v)
}
