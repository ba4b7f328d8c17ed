package handlers

import (
	"fashionfuel/internal/auth"
	"fashionfuel/internal/catalog"
	"fashionfuel/internal/chat"
	"fashionfuel/internal/shopapi"
	"fashionfuel/internal/storage"
	"fashionfuel/internal/upload"
	"fashionfuel/internal/webhook"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	WishlistHandler *WishlistHandler
	PrefsHandler    *PrefsHandler
	ReviewHandler   *ReviewHandler
	ChatHandler     *ChatHandler
	ContactHandler  *ContactHandler
	AdminHandler    *AdminHandler
	UploadHandler   *UploadHandler
}

func NewDeps(
	store storage.Store,
	api *shopapi.Client,
	cat *catalog.Slice,
	authSvc *auth.Service,
	chatSvc *chat.Service,
	orderHook, contactHook *webhook.Notifier,
	uploader *upload.Uploader,
) *Deps {
	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: cat, Store: store},
		CartHandler:     &CartHandler{Store: store, Catalog: cat},
		OrderHandler:    &OrderHandler{Store: store, API: api, Hook: orderHook},
		WishlistHandler: &WishlistHandler{Store: store, Catalog: cat},
		PrefsHandler:    &PrefsHandler{Store: store, Catalog: cat},
		ReviewHandler:   &ReviewHandler{API: api},
		ChatHandler:     &ChatHandler{Chat: chatSvc, Catalog: cat},
		ContactHandler:  &ContactHandler{Hook: contactHook},
		AdminHandler:    &AdminHandler{API: api},
		UploadHandler:   &UploadHandler{Uploader: uploader},
	}
}
