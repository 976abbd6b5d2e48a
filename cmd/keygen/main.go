package main

import (
	"log"
	"os"

	"github.com/dmitrovia/keypair-tool/internal/keygenimplement"
	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
	"go.uber.org/zap"
)

func main() {
	params := new(keymodels.InitParamsKeygen)

	zlog, err := keygenimplement.Initialization(params, os.Args[1:])
	if err != nil {
		log.Fatalf("main->Initialization: %v", err)
	}

	defer func() {
		_ = zlog.Sync()
	}()

	err = keygenimplement.Run(params, nil, zlog)
	if err != nil {
		zlog.Fatal("main->Run", zap.Error(err))
	}
}
