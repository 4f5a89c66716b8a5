package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/cronhuman/docs"
	"github.com/darkkaiser/cronhuman/internal/config"
	"github.com/darkkaiser/cronhuman/internal/pkg/version"
	"github.com/darkkaiser/cronhuman/internal/service/api/constants"
	"github.com/darkkaiser/cronhuman/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/cronhuman/internal/service/api/v1"
	v1handler "github.com/darkkaiser/cronhuman/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service Cron 해석 API 서버의 생명주기를 관리하는 서비스입니다.
//
//   - Echo 기반 HTTP/HTTPS 서버 시작 및 종료
//   - 미들웨어 체인과 라우트 설정
//   - Graceful Shutdown 지원
//
// 서비스는 고루틴으로 실행되며, context 취소로 종료됩니다.
type Service struct {
	appConfig *config.AppConfig

	catalog v1handler.Catalog

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, catalog v1handler.Catalog, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Service{
		appConfig: appConfig,

		catalog: catalog,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done()이 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.catalog == nil {
		defer serviceStopWG.Done()
		return ErrCatalogNotInitialized
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.catalog, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.catalog, s.appConfig.Describe.MaxBatchSize)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:             s.appConfig.Debug,
		AllowOrigins:      s.appConfig.CORS.AllowOrigins,
		RequestsPerSecond: s.appConfig.RateLimit.RequestsPerSecond,
		Burst:             s.appConfig.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작합니다.
// 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	cfg := s.appConfig.HTTPServer
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": cfg.ListenPort,
		"tls":  cfg.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if cfg.TLSServer {
		err = e.StartTLS(fmt.Sprintf(":%d", cfg.ListenPort), cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		err = e.Start(fmt.Sprintf(":%d", cfg.ListenPort))
	}

	s.handleServerError(err)
}

func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTPServer.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
// HTTP 서버가 먼저 종료된 경우(포트 바인딩 실패 등)에는 상태만 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
