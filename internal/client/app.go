// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-fire-crypt/internal/adapter"
	"github.com/MKhiriev/go-fire-crypt/internal/codec"
	"github.com/MKhiriev/go-fire-crypt/internal/config"
	"github.com/MKhiriev/go-fire-crypt/internal/crypto"
	"github.com/MKhiriev/go-fire-crypt/internal/logger"
	"github.com/MKhiriev/go-fire-crypt/models"
)

// App implements [Client].
type App struct {
	cipher crypto.Codec
	trees  *codec.TreeCodec

	docs    adapter.DocumentStore
	docsErr error
	tree    adapter.TreeStore
	treeErr error

	logger *logger.Logger
}

// NewApp decodes the key material in cfg and builds both store adapters.
//
// Returns an error wrapping crypto.ErrConfig for unusable key material. Store
// configuration errors are deferred to [App.Documents] and [App.Tree].
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	material, err := crypto.NewKeyMaterial(cfg.Crypto.Key, cfg.Crypto.IV)
	if err != nil {
		return nil, fmt.Errorf("create field cipher: %w", err)
	}
	aes, err := crypto.NewCodecFromKeyMaterial(material)
	if err != nil {
		return nil, fmt.Errorf("create field cipher: %w", err)
	}
	log.Debug().Int("key_bits", material.KeySize()*8).Msg("field cipher ready")

	app := &App{
		cipher: aes,
		trees:  codec.NewTreeCodec(aes, log),
		logger: log,
	}

	app.docs, app.docsErr = adapter.NewDocumentStore(cfg.Firestore, app.trees, log)
	if app.docsErr != nil {
		log.Debug().Err(app.docsErr).Msg("document store unavailable")
	}
	app.tree, app.treeErr = adapter.NewTreeStore(cfg.Realtime, app.trees, log)
	if app.treeErr != nil {
		log.Debug().Err(app.treeErr).Msg("tree store unavailable")
	}

	return app, nil
}

// NewAppWithStores builds an App around an existing cipher and stores.
// A nil store is reported as unavailable.
func NewAppWithStores(cipher crypto.Codec, docs adapter.DocumentStore, tree adapter.TreeStore, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}

	app := &App{
		cipher: cipher,
		trees:  codec.NewTreeCodec(cipher, log),
		docs:   docs,
		tree:   tree,
		logger: log,
	}
	if docs == nil {
		app.docsErr = fmt.Errorf("%w: document store not configured", config.ErrInvalidStoreConfigs)
	}
	if tree == nil {
		app.treeErr = fmt.Errorf("%w: tree store not configured", config.ErrInvalidStoreConfigs)
	}
	return app
}

func (a *App) Encrypt(plaintext string) string {
	return a.cipher.Encrypt(plaintext)
}

func (a *App) Decrypt(ciphertext string) (string, error) {
	return a.cipher.Decrypt(ciphertext)
}

func (a *App) EncryptTree(v models.Value) models.Value {
	return a.trees.EncryptTree(v)
}

func (a *App) DecryptTree(v models.Value) models.Value {
	return a.trees.DecryptTree(v)
}

func (a *App) Documents() (adapter.DocumentStore, error) {
	return a.docs, a.docsErr
}

func (a *App) Tree() (adapter.TreeStore, error) {
	return a.tree, a.treeErr
}

var _ Client = (*App)(nil)
