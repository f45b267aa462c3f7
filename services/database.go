package services

import (
	"fmt"
	"log"
	"mazegen-backend/models"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB 인스턴스
var db *gorm.DB

// InitDatabase - 환경 변수로 MySQL 연결
func InitDatabase() error {
	// 환경 변수에서 DSN 구성
	host := os.Getenv("MYSQL_HOST")
	portStr := os.Getenv("MYSQL_PORT")
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	dbname := os.Getenv("MYSQL_DATABASE")

	if host == "" || user == "" || password == "" || dbname == "" {
		return fmt.Errorf("MySQL 환경 변수가 모두 설정되지 않았습니다: MYSQL_HOST, MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port == 0 {
		port = 3306 // 기본 포트
	}

	// DSN 구성
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname)

	var errDB error
	db, errDB = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if errDB != nil {
		return fmt.Errorf("DB 연결 실패: %v", errDB)
	}

	// AutoMigrate - 테이블 자동 생성
	errMigrate := db.AutoMigrate(
		&models.MazeLog{},
	)
	if errMigrate != nil {
		return fmt.Errorf("마이그레이션 실패: %v", errMigrate)
	}

	log.Println("✅ MySQL 연결 및 마이그레이션 완료")
	log.Printf("📡 연결 정보: %s@%s:%d/%s", user, host, port, dbname)
	return nil
}

// GetDB - GORM 인스턴스 반환
func GetDB() *gorm.DB {
	return db
}

// GetRecentLogs - 최근 생성/로드 로그 조회 (maze_id는 옵션)
func GetRecentLogs(mazeID string, limit int) ([]models.MazeLog, error) {
	var logs []models.MazeLog
	query := db.Order("created_at DESC").Limit(limit)
	if mazeID != "" {
		query = query.Where("maze_id = ?", mazeID)
	}
	err := query.Find(&logs).Error
	return logs, err
}
