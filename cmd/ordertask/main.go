package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/BoburSobirjanov/order-task/pkg/domain/service"
	"github.com/BoburSobirjanov/order-task/pkg/infrastructure/mysql"
	"github.com/BoburSobirjanov/order-task/pkg/infrastructure/transport"
)

const appID = "ordertask"

type config struct {
	DBUser           string `envconfig:"db_user" default:"root"`
	DBPassword       string `envconfig:"db_password" default:""`
	DBHost           string `envconfig:"db_host" default:"127.0.0.1"`
	DBPort           string `envconfig:"db_port" default:"3306"`
	DBName           string `envconfig:"db_name" default:"ordertask"`
	ServeRESTAddress string `envconfig:"serve_rest_address" default:":8000"`
	MigrationsDir    string `envconfig:"migrations_dir" default:"migrations"`
}

func (c *config) dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runApp(args []string) error {
	var cfg config
	if err := envconfig.Process(appID, &cfg); err != nil {
		return errors.Wrap(err, "parse config")
	}

	app := &cli.App{
		Name:  appID,
		Usage: "order management backend",
		Commands: []*cli.Command{
			{
				Name:  "runserver",
				Usage: "start the REST server",
				Action: func(*cli.Context) error {
					return runServer(&cfg)
				},
			},
			{
				Name:  "migrate",
				Usage: "apply database migrations",
				Action: func(*cli.Context) error {
					return runMigrations(&cfg)
				},
			},
		},
	}
	return app.Run(args)
}

func runServer(cfg *config) error {
	db, err := mysql.Connect(cfg.dsn())
	if err != nil {
		return err
	}
	defer db.Close()

	users := mysql.NewUserStore(db)
	categories := mysql.NewCategoryStore(db)
	products := mysql.NewProductStore(db)
	orders := mysql.NewOrderStore(db)
	orderItems := mysql.NewOrderItemStore(db)
	payments := mysql.NewPaymentStore(db)

	orderItemService := service.NewOrderItemService(orderItems, orders, products, users)
	paymentService := service.NewPaymentService(payments, users, orders)

	router := transport.Router(transport.Services{
		Users:      service.NewUserService(users),
		Categories: service.NewCategoryService(categories),
		Products:   service.NewProductService(products, categories, orderItems, orders),
		Orders:     service.NewOrderService(orders, users, orderItems, orderItemService, paymentService),
		OrderItems: orderItemService,
		Payments:   paymentService,
	})

	srv := &http.Server{
		Addr:    cfg.ServeRESTAddress,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("address", srv.Addr).Info("starting REST server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve REST")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("stopping REST server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func runMigrations(cfg *config) error {
	m, err := migrate.New("file://"+cfg.MigrationsDir, "mysql://"+cfg.dsn())
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}
	log.Info("migrations applied")
	return nil
}
