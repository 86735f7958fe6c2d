package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	_ "techflow_billing/docs"
	"techflow_billing/internal/adapter/http/handlers"
	"techflow_billing/internal/adapter/messaging"
	"techflow_billing/internal/adapter/persistence/repository"
	"techflow_billing/internal/config"
	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/infrastructure/database"
	"techflow_billing/internal/infrastructure/metrics"
	"techflow_billing/internal/infrastructure/payments"
	"techflow_billing/internal/usecase"
	"techflow_billing/internal/usecase/interfaces"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

var router = gin.New()

type stores struct {
	records  interfaces.IRecordStore
	counters interfaces.ICounterStore
	payments interfaces.IBillingPaymentRepository
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	closers, err := getRoutes(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Printf("[server] close failed err=%v", err)
			}
		}
	}()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("[server] listening addr=%s storage=%s", srv.Addr, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] forced shutdown err=%v", err)
	}
}

func getRoutes(ctx context.Context, cfg config.Config) ([]io.Closer, error) {
	var closers []io.Closer
	loc := cfg.Location()

	svcCatalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	st, storeClosers, err := openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}
	closers = append(closers, storeClosers...)

	var submitter interfaces.IBookingSubmitter = messaging.LogBookingSubmitter{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher := messaging.NewKafkaBookingPublisher(cfg.KafkaBrokers, cfg.BookingsTopic)
		closers = append(closers, publisher)
		submitter = publisher
		log.Printf("[booking][setup] publishing to kafka topic=%s brokers=%v", cfg.BookingsTopic, cfg.KafkaBrokers)
	} else {
		log.Printf("[booking][setup] no KAFKA_BROKERS set, bookings are logged only")
	}
	notifier := messaging.NewSlackBookingNotifier(cfg.SlackWebhookURL, cfg.SlackTimeout)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(svcCatalog, st.records, st.counters, cfg.InvoicePrefix, cfg.ArchiveLimit, loc)
	quoteUseCase := usecase.NewQuoteUseCase(svcCatalog)
	customerUseCase := usecase.NewCustomerUseCase(st.records, cfg.ArchiveLimit)
	bookingUseCase := usecase.NewBookingUseCase(svcCatalog, submitter, notifier, loc)
	paymentUseCase := usecase.NewBillingPaymentUseCase(st.payments, invoiceUseCase, paymentGateway)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, handlers.NewQuoteHandler(quoteUseCase))
	addBillingRoutes(v1, handlers.NewInvoiceHandler(invoiceUseCase, loc), handlers.NewBillingPaymentHandler(paymentUseCase))
	addCustomerRoutes(v1, handlers.NewCustomerHandler(customerUseCase))
	addBookingRoutes(v1, handlers.NewBookingHandler(bookingUseCase, loc))
	return closers, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	log.Printf("[catalog][setup] loaded file=%s services=%d", path, len(c.Services()))
	return c, nil
}

// openStores picks the record, counter and payment backends. Redis has no payment
// repository, so payments stay in memory there.
func openStores(ctx context.Context, cfg config.Config) (stores, []io.Closer, error) {
	switch cfg.StorageBackend {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return stores{}, nil, err
		}
		return stores{
			records:  repository.NewRecordDynamoRepository(ddb, cfg.RecordsTable),
			counters: repository.NewCounterDynamoRepository(ddb, cfg.CountersTable),
			payments: repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable),
		}, nil, nil
	case config.StorageRedis:
		rdb, err := database.ConnectRedis(ctx, database.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return stores{}, nil, err
		}
		repo := repository.NewRedisRecordRepository(rdb)
		return stores{
			records:  repo,
			counters: repo,
			payments: repository.NewMemoryBillingPaymentRepository(),
		}, []io.Closer{rdb}, nil
	case config.StorageMemory:
		mem := repository.NewMemoryStore()
		return stores{
			records:  mem,
			counters: mem,
			payments: repository.NewMemoryBillingPaymentRepository(),
		}, nil, nil
	default:
		return stores{}, nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
