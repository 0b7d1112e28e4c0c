package server

import (
	"github.com/umakantv/go-utils/httpserver"

	"wardrobe-service/handlers"
)

type route struct {
	httpserver.Route
	handler httpserver.HandlerFunc
}

func bearer(name, method, path string, h httpserver.HandlerFunc) route {
	return route{
		Route:   httpserver.Route{Name: name, Method: method, Path: path, AuthType: "bearer"},
		handler: h,
	}
}

func public(name, method, path string, h httpserver.HandlerFunc) route {
	return route{
		Route:   httpserver.Route{Name: name, Method: method, Path: path, AuthType: "none"},
		handler: h,
	}
}

// routes lists the API. Literal paths come before {id} paths sharing a prefix.
func routes(
	users *handlers.UserHandler,
	designers *handlers.DesignerHandler,
	designs *handlers.DesignHandler,
	clothing *handlers.ClothingHandler,
	outfits *handlers.OutfitHandler,
	favorites *handlers.FavoriteHandler,
	auth *handlers.AuthHandler,
) []route {
	return []route{
		// Sessions
		public("Login", "POST", "/login", auth.Login),
		public("DesignerLogin", "POST", "/designers/login", auth.DesignerLogin),
		bearer("Me", "GET", "/me", auth.Me),

		// Users
		bearer("ListUsers", "GET", "/users", users.GetUsers),
		bearer("CreateUser", "POST", "/users", users.CreateUser),
		bearer("LookupUserID", "GET", "/users/lookup", users.LookupUserID),
		bearer("GetUserByEmail", "GET", "/users/by-email", users.GetUserByEmail),
		bearer("UpdateUsername", "PUT", "/users/username", users.UpdateUsername),
		bearer("ChangePassword", "PUT", "/users/password", users.ChangePassword),
		bearer("DeleteUser", "DELETE", "/users/{id}", users.DeleteUser),
		bearer("DeleteAccount", "DELETE", "/users/{id}/account", users.DeleteAccount),

		// Designers
		bearer("ListDesigners", "GET", "/designers", designers.GetDesigners),
		bearer("CreateDesigner", "POST", "/designers", designers.CreateDesigner),
		bearer("GetDesignerByEmail", "GET", "/designers/by-email", designers.GetDesignerByEmail),
		bearer("GetDesigner", "GET", "/designers/{id}", designers.GetDesigner),
		bearer("UpdateDesigner", "PUT", "/designers/{id}", designers.UpdateDesigner),
		bearer("DeleteDesigner", "DELETE", "/designers/{id}", designers.DeleteDesigner),

		// Designs
		bearer("ListDesigns", "GET", "/designs", designs.GetDesigns),
		bearer("ListDesignerDesigns", "GET", "/designers/{id}/designs", designs.GetDesignerDesigns),
		bearer("CreateDesign", "POST", "/designers/{id}/designs", designs.CreateDesign),
		bearer("DeleteDesign", "DELETE", "/designs/{id}", designs.DeleteDesign),

		// Clothing
		bearer("ListClothing", "GET", "/clothing", clothing.GetClothing),
		bearer("CreateClothingItem", "POST", "/clothing", clothing.CreateClothingItem),
		bearer("DeleteClothingItem", "DELETE", "/clothing/{id}", clothing.DeleteClothingItem),

		// Outfits
		bearer("ListOutfits", "GET", "/outfits", outfits.GetOutfits),
		bearer("GetOutfit", "GET", "/outfits/{id}", outfits.GetOutfit),
		bearer("CreateOutfit", "POST", "/outfits", outfits.CreateOutfit),
		bearer("DeleteOutfit", "DELETE", "/outfits/{id}", outfits.DeleteOutfit),

		// Favourites
		bearer("ListFavoriteItems", "GET", "/favorites/items", favorites.GetFavoriteItems),
		bearer("AddFavoriteItem", "POST", "/favorites/items", favorites.AddFavoriteItem),
		bearer("GetFavoriteItem", "GET", "/favorites/items/{id}", favorites.GetFavoriteItem),
		bearer("RemoveFavoriteItem", "DELETE", "/favorites/items/{id}", favorites.RemoveFavoriteItem),
		bearer("ListFavoriteOutfits", "GET", "/favorites/outfits", favorites.GetFavoriteOutfits),
		bearer("AddFavoriteOutfit", "POST", "/favorites/outfits", favorites.AddFavoriteOutfit),
		bearer("GetFavoriteOutfit", "GET", "/favorites/outfits/{id}", favorites.GetFavoriteOutfit),
		bearer("RemoveFavoriteOutfit", "DELETE", "/favorites/outfits/{id}", favorites.RemoveFavoriteOutfit),
	}
}
