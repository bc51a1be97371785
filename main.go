// @title Homework Check API
// @version 1.0
// @description 作业答案核对系统：教师维护班级、作业与答案，学生提交后即时判分。

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"fmt"
	"homework_check_backend/internal/app"
	"homework_check_backend/internal/config"
	"homework_check_backend/pkg/logger"
	"log"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 命令行参数
	configPath := flag.String("config", "configs", "配置文件所在目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	hashPassword := flag.String("hash-password", "", "输出教师密码的 bcrypt 哈希后退出")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*hashPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(string(hash))
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize app", zap.Error(err))
	}
	defer logger.Log.Sync()

	// 迁移在 NewApp 中完成
	if cfg.MigrateOnly {
		application.Close()
		logger.Log.Info("数据库迁移完成，退出程序")
		return
	}

	if err := application.Run(*configPath); err != nil {
		logger.Log.Fatal("Server error", zap.Error(err))
	}
}
