package service

import (
	"context"
	"sync"
	"time"

	"tour-insight/app/logger"

	"github.com/robfig/cron/v3"
)

// warmTimeout 单次预热的最长执行时间
const warmTimeout = 30 * time.Second

// RankWarmer 按 cron 计划定期预热排行缓存
type RankWarmer struct {
	cron   *cron.Cron
	ranks  *RankService
	logger *logger.Logger
	wg     sync.WaitGroup
}

// NewRankWarmer schedule 支持标准 cron 表达式和 @every 描述符
func NewRankWarmer(schedule string, ranks *RankService, log *logger.Logger) (*RankWarmer, error) {
	w := &RankWarmer{
		cron:   cron.New(),
		ranks:  ranks,
		logger: log,
	}
	if _, err := w.cron.AddFunc(schedule, w.run); err != nil {
		return nil, err
	}
	return w, nil
}

// Start 启动预热任务，启动时立即执行一次
func (w *RankWarmer) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run()
	}()
	w.cron.Start()
	w.logger.Info("排行缓存预热任务已启动")
}

// Stop 停止调度并等待正在执行的任务结束
func (w *RankWarmer) Stop() {
	<-w.cron.Stop().Done()
	w.wg.Wait()
	w.logger.Info("排行缓存预热任务已停止")
}

func (w *RankWarmer) run() {
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	start := time.Now()
	if err := w.ranks.Warm(ctx); err != nil {
		w.logger.Errorf("预热排行缓存失败: %v", err)
		return
	}
	w.logger.Debugf("排行缓存预热完成，耗时 %s", time.Since(start))
}
