package clientrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/clientrepo"
	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/validation"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ClientRepositoryIntegrationTestSuite exercises GormClientRepository against
// a real PostgreSQL container, including the CPF unique index.
type ClientRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *clientrepo.GormClientRepository
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&clientrepo.ClientDTO{}))
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE clients").Error)
	suite.repository = clientrepo.NewGormClientRepository(suite.db)
}

func (suite *ClientRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ClientRepositoryIntegrationTestSuite) newClient(name, cpf string) *client.Client {
	c, err := client.NewClient(kernel.NewUUID(), name, cpf)
	suite.Require().NoError(err)
	return c
}

func (suite *ClientRepositoryIntegrationTestSuite) TestAdd_ValidClient_RoundTrips() {
	ctx := context.Background()
	c := suite.newClient("Maria Silva", "529.982.247-25")

	suite.Require().NoError(suite.repository.Add(ctx, c))

	retrieved, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(c))
	suite.Equal("Maria Silva", retrieved.Name())
	suite.Equal("52998224725", retrieved.CPF())
}

func (suite *ClientRepositoryIntegrationTestSuite) TestAdd_DuplicateCPF_ReturnsConflict() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newClient("Maria Silva", "52998224725")))
	err := suite.repository.Add(ctx, suite.newClient("Joao Souza", "52998224725"))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsNotUnique)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestUpdate_ExistingClient_PersistsChanges() {
	ctx := context.Background()
	c := suite.newClient("Maria Silva", "52998224725")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(c.Edit("Maria Souza", "11144477735"))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	retrieved, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Maria Souza", retrieved.Name())
	suite.Equal("11144477735", retrieved.CPF())
}

func (suite *ClientRepositoryIntegrationTestSuite) TestUpdate_NonExistentClient_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.newClient("Maria Silva", "52998224725"))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestExistsByCPF_RespectsExclusion() {
	ctx := context.Background()
	c := suite.newClient("Maria Silva", "52998224725")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	exists, err := suite.repository.ExistsByCPF(ctx, "52998224725", kernel.UUID{})
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByCPF(ctx, "52998224725", c.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.repository.ExistsByCPF(ctx, "11144477735", kernel.UUID{})
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGetByCPF_FindsClient() {
	ctx := context.Background()
	c := suite.newClient("Maria Silva", "52998224725")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	retrieved, err := suite.repository.GetByCPF(ctx, "52998224725")
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(c))

	_, err = suite.repository.GetByCPF(ctx, "11144477735")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestGetPaged_KeepsInsertionOrder() {
	ctx := context.Background()

	clients := make([]*client.Client, 0, 5)
	for i := 0; i < 5; i++ {
		cpf := validation.CleanCPF(testCPFs[i])
		c := suite.newClient(fmt.Sprintf("Client %d", i), cpf)
		suite.Require().NoError(suite.repository.Add(ctx, c))
		clients = append(clients, c)
	}

	page, total, err := suite.repository.GetPaged(ctx, 2, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Require().Len(page, 2)
	suite.True(page[0].IsEqual(clients[2]))
	suite.True(page[1].IsEqual(clients[3]))
}

// testCPFs are distinct valid CPF numbers for seeding.
var testCPFs = []string{
	"52998224725",
	"11144477735",
	"12345678909",
	"12345678062",
	"00000001910",
}

func TestClientRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode; requires Docker")
	}
	suite.Run(t, new(ClientRepositoryIntegrationTestSuite))
}
