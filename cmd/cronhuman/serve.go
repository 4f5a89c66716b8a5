package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/cronhuman/internal/config"
	apperrors "github.com/darkkaiser/cronhuman/internal/pkg/errors"
	"github.com/darkkaiser/cronhuman/internal/pkg/version"
	"github.com/darkkaiser/cronhuman/internal/service"
	"github.com/darkkaiser/cronhuman/internal/service/api"
	"github.com/darkkaiser/cronhuman/internal/service/catalog"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
)

const banner = `
   ____                 _   _
  / ___|_ __ ___  _ __ | | | |_   _ _ __ ___   __ _ _ __
 | |   | '__/ _ \| '_ \| |_| | | | | '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
 | |___| | | (_) | | | |  _  | |_| | | | | | | (_| | | | |
  \____|_|  \___/|_| |_|_| |_|\__,_|_| |_| |_|\__,_|_| |_|
                                                      %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

// runServe 설정을 로드하고 Catalog, API 서비스를 시작한 뒤 종료 시그널(SIGINT, SIGTERM)을 기다립니다.
func runServe(args []string, stdout io.Writer) error {
	fs := newFlagSet("serve", stdout)
	configFile := fs.StringP("config", "c", config.DefaultFilename, "설정 파일 경로")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return newUsageError(fmt.Sprintf("serve: 알 수 없는 인자입니다: %s", fs.Arg(0)), nil)
	}

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(*configFile)
	if err != nil {
		return err
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(newServeLogOptions(appConfig))
	if err != nil {
		return apperrors.Wrap(err, apperrors.System, "로그 시스템 초기화에 실패했습니다")
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	fmt.Fprintf(stdout, banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
		"config":  *configFile,
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	catalogService := catalog.NewService(appConfig.Schedules)
	apiService := api.NewService(appConfig, catalogService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	for _, s := range []service.Service{catalogService, apiService} {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			return err
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent("main").Info("서버 가동 완료")

	sig := <-termC

	applog.WithComponentAndFields("main", applog.Fields{
		"signal": sig.String(),
	}).Info("종료 시그널 수신")

	cancel()
	serviceStopWG.Wait()

	return nil
}

// newServeLogOptions 실행 환경(Debug)에 맞는 로그 프로필을 고르고, 설정 파일의 log 항목으로 덮어씁니다.
func newServeLogOptions(appConfig *config.AppConfig) applog.Options {
	var opts applog.Options
	if appConfig.Debug {
		opts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		opts = applog.NewProductionOptions(config.AppName)
	}

	if appConfig.Log.Dir != "" {
		opts.Dir = appConfig.Log.Dir
	}
	if appConfig.Log.MaxAge > 0 {
		opts.MaxAge = appConfig.Log.MaxAge
	}
	// Level은 설정 검증(oneof)을 통과한 값이므로 파싱 에러는 발생하지 않습니다.
	if appConfig.Log.Level != "" && !appConfig.Debug {
		if level, err := applog.ParseLevel(appConfig.Log.Level); err == nil {
			opts.Level = level
		}
	}

	return opts
}
