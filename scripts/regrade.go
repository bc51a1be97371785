// 手动触发重新判分脚本
//
// 保存答案时会自动重新判分。此脚本用于数据导入或答案被直接改库之后的补算。
//
// 用法: go run scripts/regrade.go [-assignment <作业ID>]

package main

import (
	"context"
	"flag"
	"homework_check_backend/internal/config"
	"homework_check_backend/internal/repository"
	"homework_check_backend/internal/service"
	"homework_check_backend/pkg/database"
	"homework_check_backend/pkg/logger"
	"log"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件所在目录")
	assignmentID := flag.String("assignment", "", "只处理指定作业，默认全部")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	store := repository.NewGormStorage(db)
	regrader := service.NewRegradeService(store, logger.Log.Named("regrade"))
	ctx := context.Background()

	ids := []string{*assignmentID}
	if *assignmentID == "" {
		assignments, err := store.ListAssignments(ctx)
		if err != nil {
			log.Fatalf("读取作业失败: %v", err)
		}
		ids = ids[:0]
		for _, a := range assignments {
			ids = append(ids, a.ID)
		}
	}

	for _, id := range ids {
		report := regrader.RegradeAssignment(ctx, id)
		logger.Log.Info("重新判分完成",
			zap.String("assignmentId", id),
			zap.Int("submissions", report.Submissions),
			zap.Int("updated", report.Updated),
			zap.Int("skipped", report.Skipped),
			zap.Int("failed", report.Failed),
		)
	}
}
