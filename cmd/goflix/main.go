package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"goflix/internal/appflow"
	"goflix/internal/catalog"
	"goflix/internal/search"
	"goflix/internal/session"
	"goflix/internal/util"
	"goflix/internal/version"
	"goflix/internal/watchlater"
)

func main() {
	versionFlag := flag.Bool("version", false, "show version information")
	debugFlag := flag.Bool("debug", false, "enable debug mode")
	helpFlag := flag.Bool("help", false, "show help message")
	altHelpFlag := flag.Bool("h", false, "show help message")

	flag.Parse()

	if *versionFlag || version.HasVersionArg() {
		version.ShowVersion()
		return
	}
	if *helpFlag || *altHelpFlag {
		util.Helper()
		return
	}

	util.SetDebugMode(*debugFlag)
	util.InitLogger()
	util.LoadEnv()

	apiKey := util.CatalogAPIKey()
	if apiKey == "" {
		util.Fatal("TMDB_API_KEY is not set; put it in the environment or a .env file")
	}

	dataDir, err := util.DataDir()
	if err != nil {
		util.Fatal("could not prepare data directory", "error", err)
	}

	store, err := watchlater.Open(filepath.Join(dataDir, "watchlater.db"))
	if err != nil {
		util.Fatal("could not open watch-later store", "error", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			util.Debug("store close failed", "error", err)
		}
	}()

	sess, err := session.Load(dataDir)
	if err != nil {
		util.Warn("could not load session, continuing signed out", "error", err)
	}

	client := catalog.New(apiKey)
	app := &appflow.App{
		Catalog: client,
		Engine:  search.NewEngine(client, search.DefaultOptions()),
		Store:   store,
		Session: sess,
		DataDir: dataDir,
	}

	if err := app.Run(context.Background()); err != nil {
		fmt.Println(util.ErrorHandler(err))
		os.Exit(1)
	}
}
