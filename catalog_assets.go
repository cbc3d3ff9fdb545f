package thumbkit

// Built-in pattern and sticker artwork.

var patternAssets = []Asset{
	{
		ID:     "glitter_purple",
		Name:   "Glitter Roxo",
		Kind:   AssetPattern,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><rect width="100" height="100" fill="#4A148C"/><filter id="noiseP"><feTurbulence type="fractalNoise" baseFrequency="0.9" numOctaves="3" stitchTiles="stitch"/><feColorMatrix type="saturate" values="0"/><feComponentTransfer><feFuncR type="linear" slope="3" intercept="-1"/><feFuncG type="linear" slope="3" intercept="-1"/><feFuncB type="linear" slope="3" intercept="-1"/></feComponentTransfer></filter><rect width="100%" height="100%" filter="url(#noiseP)" opacity="0.6" style="mix-blend-mode: overlay"/></svg>`,
	},
	{
		ID:     "gold_foil",
		Name:   "Folha de Ouro",
		Kind:   AssetPattern,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><defs><radialGradient id="goldGrad" cx="50%" cy="50%" r="50%" fx="50%" fy="50%"><stop offset="0%" stop-color="#FFF176"/><stop offset="50%" stop-color="#FBC02D"/><stop offset="100%" stop-color="#F57F17"/></radialGradient><filter id="goldNoise"><feTurbulence type="turbulence" baseFrequency="0.1" numOctaves="2" result="turbulence"/><feSpecularLighting in="turbulence" surfaceScale="5" specularConstant="1" specularExponent="20" lighting-color="#FFD700" result="specular"><fePointLight x="50" y="50" z="50"/></feSpecularLighting><feComposite in="specular" in2="SourceAlpha" operator="in" result="composite"/></filter></defs><rect width="100%" height="100%" fill="url(#goldGrad)"/><rect width="100%" height="100%" filter="url(#goldNoise)" opacity="0.5"/></svg>`,
	},
	{
		ID:     "stone",
		Name:   "Pedra",
		Kind:   AssetPattern,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><rect width="100" height="100" fill="#5D4037"/><filter id="stoneFilter"><feTurbulence type="fractalNoise" baseFrequency="0.4" numOctaves="4" stitchTiles="stitch" result="noise"/><feDiffuseLighting in="noise" lighting-color="#ffffff" surfaceScale="3"><feDistantLight azimuth="45" elevation="60"/></feDiffuseLighting></filter><rect width="100%" height="100%" fill="#795548"/><rect width="100%" height="100%" filter="url(#stoneFilter)" opacity="0.7" style="mix-blend-mode: multiply"/></svg>`,
	},
	{
		ID:     "magma",
		Name:   "Magma/Abstrato",
		Kind:   AssetPattern,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><rect width="100" height="100" fill="#300000"/><filter id="magmaFilter"><feTurbulence type="turbulence" baseFrequency="0.05" numOctaves="2" seed="5"/><feColorMatrix values="1 0 0 0 0  0 0 0 0 0  0 0 0 0 0  0 0 0 1 0"/></filter><rect width="100%" height="100%" filter="url(#magmaFilter)" opacity="1" style="mix-blend-mode: screen"/><rect width="100%" height="100%" fill="rgba(255,0,0,0.3)"/></svg>`,
	},
	{
		ID:     "ice",
		Name:   "Gelo/Cristal",
		Kind:   AssetPattern,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><rect width="100" height="100" fill="#E1F5FE"/><filter id="iceFilter"><feTurbulence type="fractalNoise" baseFrequency="0.08" numOctaves="3"/><feDisplacementMap in="SourceGraphic" scale="20"/></filter><rect width="100%" height="100%" fill="#B3E5FC" filter="url(#iceFilter)" opacity="0.8"/></svg>`,
	},
	{
		ID:     "wood",
		Name:   "Madeira",
		Kind:   AssetPattern,
		Markup: `<svg width="100" height="100" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><rect width="100" height="100" fill="#6D4C41"/><path d="M0 20 Q50 10 100 20 M0 50 Q50 60 100 50 M0 80 Q50 70 100 80" stroke="#3E2723" stroke-width="3" fill="none"/><path d="M20 0 Q30 50 20 100 M70 0 Q60 50 70 100" stroke="#4E342E" stroke-width="2" fill="none" opacity="0.5"/></svg>`,
	},
	{
		ID:     "carbon",
		Name:   "Fibra de Carbono",
		Kind:   AssetPattern,
		Markup: `<svg width="20" height="20" viewBox="0 0 20 20" xmlns="http://www.w3.org/2000/svg"><rect width="20" height="20" fill="#1a1a1a"/><path d="M0 20 L20 0 M10 20 L20 10 M0 10 L10 0" stroke="#333" stroke-width="1.5"/></svg>`,
	},
	{
		ID:     "jeans",
		Name:   "Jeans",
		Kind:   AssetPattern,
		Markup: `<svg width="100" height="100" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><rect width="100" height="100" fill="#1565C0"/><filter id="fabric"><feTurbulence type="fractalNoise" baseFrequency="0.8" numOctaves="2"/><feColorMatrix type="saturate" values="0"/></filter><rect width="100%" height="100%" filter="url(#fabric)" opacity="0.3" style="mix-blend-mode: overlay"/></svg>`,
	},
	{
		ID:     "grass",
		Name:   "Grama",
		Kind:   AssetPattern,
		Markup: `<svg width="40" height="40" viewBox="0 0 40 40" xmlns="http://www.w3.org/2000/svg"><rect width="40" height="40" fill="#2E7D32"/><path d="M5 40 L10 20 L15 40 M20 40 L25 15 L30 40 M30 40 L35 25 L40 40" stroke="#4CAF50" stroke-width="2" fill="none"/><path d="M0 40 L5 25 L10 40 M15 40 L20 10 L25 40" stroke="#66BB6A" stroke-width="2" fill="none"/></svg>`,
	},
	{
		ID:     "leaves",
		Name:   "Folhas",
		Kind:   AssetPattern,
		Markup: `<svg width="60" height="60" viewBox="0 0 60 60" xmlns="http://www.w3.org/2000/svg"><rect width="60" height="60" fill="#1B5E20"/><circle cx="15" cy="15" r="10" fill="#43A047"/><circle cx="45" cy="45" r="10" fill="#43A047"/><ellipse cx="45" cy="15" rx="12" ry="8" fill="#2E7D32" transform="rotate(45 45 15)"/><ellipse cx="15" cy="45" rx="12" ry="8" fill="#2E7D32" transform="rotate(45 15 45)"/></svg>`,
	},
	{
		ID:     "metal",
		Name:   "Metal",
		Kind:   AssetPattern,
		Markup: `<svg width="100" height="100" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><defs><linearGradient id="grad" x1="0%" y1="0%" x2="100%" y2="100%"><stop offset="0%" stop-color="#B0B0B0"/><stop offset="50%" stop-color="#E0E0E0"/><stop offset="100%" stop-color="#B0B0B0"/></linearGradient></defs><rect width="100" height="100" fill="url(#grad)"/><path d="M0 10 L100 0 M0 30 L100 20 M0 50 L100 40 M0 70 L100 60 M0 90 L100 80" stroke="#FFFFFF" stroke-width="0.5" opacity="0.5"/><path d="M10 0 L0 100 M30 0 L20 100 M50 0 L40 100 M70 0 L60 100 M90 0 L80 100" stroke="#000000" stroke-width="0.5" opacity="0.2"/></svg>`,
	},
	{
		ID:     "noise",
		Name:   "Granulado",
		Kind:   AssetPattern,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><filter id="noiseFilter"><feTurbulence type="fractalNoise" baseFrequency="0.8" numOctaves="3" stitchTiles="stitch"/></filter><rect width="100%" height="100%" filter="url(#noiseFilter)" opacity="0.5"/></svg>`,
	},
}

var stickerAssets = []Asset{
	{
		ID:     "arrow_red_chunky",
		Name:   "Seta Vermelha Grossa",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><path d="M5 50 L60 50 L60 30 L95 60 L60 90 L60 70 L5 70 Z" fill="red" stroke="black" stroke-width="3"/></svg>`,
	},
	{
		ID:     "arrow_doodle",
		Name:   "Seta Desenhada",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 80" xmlns="http://www.w3.org/2000/svg"><path d="M10 40 Q 50 10, 80 40" stroke="red" stroke-width="5" fill="none" stroke-linecap="round"/><path d="M70 30 L80 40 L70 50" stroke="red" stroke-width="5" fill="none" stroke-linecap="round" stroke-linejoin="round"/></svg>`,
	},
	{
		ID:     "circle_red_brush",
		Name:   "Círculo de Pincel",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><circle cx="50" cy="50" r="40" fill="none" stroke="red" stroke-width="8" stroke-dasharray="10 5" transform="rotate(-15 50 50)"/></svg>`,
	},
	{
		ID:     "subscribe_button",
		Name:   "Botão Inscrever-se",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 200 60" xmlns="http://www.w3.org/2000/svg"><rect x="0" y="0" width="200" height="60" rx="10" fill="#FF0000"/><text x="100" y="38" font-family="Roboto, sans-serif" font-size="28" fill="white" text-anchor="middle" font-weight="bold">INSCREVA-SE</text></svg>`,
	},
	{
		ID:     "thug_life_glasses",
		Name:   "Óculos Thug Life",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 120 30" xmlns="http://www.w3.org/2000/svg"><g fill="#000"><rect x="0" y="0" width="30" height="30"/><rect x="90" y="0" width="30" height="30"/><rect x="25" y="10" width="10" height="10"/><rect x="40" y="10" width="10" height="10"/><rect x="55" y="10" width="10" height="10"/><rect x="70" y="10" width="10" height="10"/><rect x="85" y="10" width="10" height="10"/></g></svg>`,
	},
	{
		ID:     "sparkles",
		Name:   "Brilhos",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><path d="M50 0 L55 45 L100 50 L55 55 L50 100 L45 55 L0 50 L45 45 Z" fill="yellow"/><path d="M20 15 L22 33 L40 35 L22 37 L20 55 L18 37 L0 35 L18 33 Z" fill="white"/><path d="M80 65 L82 83 L100 85 L82 87 L80 105 L78 87 L60 85 L78 83 Z" fill="cyan"/></svg>`,
	},
	{
		ID:     "fire",
		Name:   "Fogo",
		Kind:   AssetSticker,
		Markup: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#FFA500" d="M12.83 2.2a1 1 0 0 0-1.66 0C8.3 6.13 6 9.58 6 12.5c0 3.31 2.69 6 6 6s6-2.69 6-6c0-2.92-2.3-6.37-5.17-10.3z"/><path fill="#FFC107" d="M12 17.5c-1.38 0-2.5-1.12-2.5-2.5s2.5-4 2.5-4s2.5 2.62 2.5 4s-1.12 2.5-2.5 2.5z"/></svg>`,
	},
	{
		ID:     "versus",
		Name:   "Versus",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 50" xmlns="http://www.w3.org/2000/svg"><text x="0" y="40" font-family="Anton, sans-serif" font-size="40" font-weight="bold" fill="white" stroke="black" stroke-width="2">VS</text></svg>`,
	},
	{
		ID:     "comic_burst",
		Name:   "Explosão Comic",
		Kind:   AssetSticker,
		Markup: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><path d="M50 0 L55 35 L75 25 L65 45 L95 50 L65 55 L75 75 L55 65 L50 100 L45 65 L25 75 L35 55 L5 50 L35 45 L25 25 L45 35 Z" fill="yellow" stroke="black" stroke-width="2"/></svg>`,
	},
	{
		ID:     "crown_gold",
		Name:   "Coroa Dourada",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 60" xmlns="http://www.w3.org/2000/svg"><path d="M10 50 L20 20 L40 40 L50 10 L60 40 L80 20 L90 50 Z" fill="gold" stroke="black" stroke-width="2"/><circle cx="20" cy="18" r="5" fill="red"/><circle cx="50" cy="8" r="5" fill="blue"/><circle cx="80" cy="18" r="5" fill="red"/></svg>`,
	},
	{
		ID:     "100_sticker",
		Name:   "100 Pontos",
		Kind:   AssetSticker,
		Markup: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120 50"><text x="0" y="40" font-family="Impact, sans-serif" font-size="50" font-weight="bold" fill="red" stroke="white" stroke-width="2">100</text></svg>`,
	},
	{
		ID:     "censored_bar",
		Name:   "Barra de Censura",
		Kind:   AssetSticker,
		Markup: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 20"><rect width="100" height="20" fill="black"/></svg>`,
	},
	{
		ID:     "like_icon",
		Name:   "Ícone Like",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg"><path fill="#3B82F6" d="M5 9v11h4V9H5zm14.4-1c.2 0 .4.1.6.3s.2.4.2.6v.2l-2.8 6.3c-.2.4-.6.6-1 .6H9V9l4.3-4.3c.2-.2.5-.3.8-.3h.1c.3 0 .6.1.8.4l2.1 2.3V9h2.3z"/></svg>`,
	},
	{
		ID:     "bell",
		Name:   "Sino de Notificação",
		Kind:   AssetSticker,
		Markup: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M12 22c1.1 0 2-.9 2-2h-4c0 1.1.9 2 2 2zm6-6v-5c0-3.07-1.63-5.64-4.5-6.32V4c0-.83-.67-1.5-1.5-1.5s-1.5.67-1.5 1.5v.68C7.64 5.36 6 7.92 6 11v5l-2 2v1h16v-1l-2-2z" fill="gold"/></svg>`,
	},
	{
		ID:     "live_badge",
		Name:   "Selo LIVE",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 120 40" xmlns="http://www.w3.org/2000/svg"><rect x="0" y="0" width="120" height="40" rx="8" fill="#FF0000"/><text x="60" y="28" font-family="Oswald, sans-serif" font-size="24" fill="white" text-anchor="middle" font-weight="bold">● LIVE</text></svg>`,
	},
	{
		ID:     "new_badge",
		Name:   "Selo NOVO",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 40" xmlns="http://www.w3.org/2000/svg"><rect x="0" y="0" width="100" height="40" rx="8" fill="#3B82F6"/><text x="50" y="28" font-family="Bebas Neue, sans-serif" font-size="28" fill="white" text-anchor="middle" font-weight="bold">NOVO</text></svg>`,
	},
	{
		ID:     "rec_indicator",
		Name:   "Indicador REC",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 40" xmlns="http://www.w3.org/2000/svg"><rect x="0" y="0" width="100" height="40" rx="8" fill="black" opacity="0.7"/><circle cx="20" cy="20" r="8" fill="red"/><text x="65" y="28" font-family="Oswald, sans-serif" font-size="24" fill="white" text-anchor="middle" font-weight="bold">REC</text></svg>`,
	},
	{
		ID:     "comic_pow",
		Name:   "POW! Comic",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 150 100" xmlns="http://www.w3.org/2000/svg"><path d="M75 0 L85 30 L110 20 L95 45 L140 50 L95 55 L110 80 L85 70 L75 100 L65 70 L40 80 L55 55 L10 50 L55 45 L40 20 L65 30 Z" fill="orange" stroke="black" stroke-width="3"/><text x="75" y="60" font-family="Anton, sans-serif" font-size="40" fill="red" stroke="black" stroke-width="1.5" text-anchor="middle" transform="rotate(-15 75 55)">POW!</text></svg>`,
	},
	{
		ID:     "arrow_glowing_blue",
		Name:   "Seta Azul Brilhante",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 120 120" xmlns="http://www.w3.org/2000/svg"><defs><filter id="glow"><feGaussianBlur stdDeviation="4.5" result="coloredBlur"/><feMerge><feMergeNode in="coloredBlur"/><feMergeNode in="SourceGraphic"/></feMerge></filter></defs><path d="M20 60 L70 60 L70 40 L110 70 L70 100 L70 80 L20 80 Z" fill="#00BFFF" filter="url(#glow)"/></svg>`,
	},
	{
		ID:     "underline_yellow_doodle",
		Name:   "Sublinhado Amarelo",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 150 20" xmlns="http://www.w3.org/2000/svg"><path d="M5 10 C 30 20, 60 0, 90 10 S 145 0, 145 15" stroke="yellow" stroke-width="5" fill="none" stroke-linecap="round"/></svg>`,
	},
	{
		ID:     "heart_pixel",
		Name:   "Coração Pixel",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 9 8" xmlns="http://www.w3.org/2000/svg" shape-rendering="crispEdges"><path stroke="#FF0000" d="M1 2h1V1h1v1h1V1h1v1h1V2h1v1h-1v1h-1v1h-1V4h-1v1H2V4H1V3h1V2z"/><path fill="#FF0000" d="M2 2h1v1h-1zM4 2h1v1h-1zM6 2h1v1h-1zM3 3h1v1h-1zM5 3h1v1h-1z"/></svg>`,
	},
	{
		ID:     "comment_bubble",
		Name:   "Balão de Comentário",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg"><path d="M20 2H4c-1.1 0-2 .9-2 2v12c0 1.1.9 2 2 2h14l4 4V4c0-1.1-.9-2-2-2z" fill="white"/></svg>`,
	},
	{
		ID:     "eye_views",
		Name:   "Ícone Visualizações",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg"><path d="M12 4.5C7 4.5 2.7 7.6 1 12c1.7 4.4 6 7.5 11 7.5s9.3-3.1 11-7.5C21.3 7.6 17 4.5 12 4.5zm0 10c-2.5 0-4.5-2-4.5-4.5S9.5 5.5 12 5.5s4.5 2 4.5 4.5-2 4.5-4.5 4.5zm0-7C10.9 7.5 10 8.4 10 9.5s.9 2 2 2 2-.9 2-2-.9-2-2-2z" fill="white"/></svg>`,
	},
	{
		ID:     "loading_bar",
		Name:   "Barra de Carregamento",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 200 20" xmlns="http://www.w3.org/2000/svg"><rect x="0" y="0" width="200" height="20" fill="#4A5568" rx="5"/><rect x="0" y="0" width="140" height="20" fill="#4299E1" rx="5"/></svg>`,
	},
	{
		ID:     "shocked_face",
		Name:   "Rosto Chocado",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><circle cx="50" cy="50" r="45" fill="yellow" stroke="black" stroke-width="3"/><circle cx="35" cy="40" r="8" fill="black"/><circle cx="65" cy="40" r="8" fill="black"/><ellipse cx="50" cy="70" rx="20" ry="10" fill="black"/></svg>`,
	},
	{
		ID:     "red_frame_corner",
		Name:   "Canto de Moldura",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 50 50" xmlns="http://www.w3.org/2000/svg"><path d="M0 0 H 50 V 10 H 10 V 50 H 0 Z" fill="red"/></svg>`,
	},
	{
		ID:     "sale_tag",
		Name:   "Etiqueta de Desconto",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 50" xmlns="http://www.w3.org/2000/svg"><path d="M0 0 H 80 L 100 25 L 80 50 H 0 V 0 Z" fill="red"/><circle cx="15" cy="25" r="5" fill="white"/><text x="55" y="32" font-family="Impact, sans-serif" font-size="20" fill="white" text-anchor="middle">SALE</text></svg>`,
	},
	{
		ID:     "checkmark_green",
		Name:   "Check Verde",
		Kind:   AssetSticker,
		Markup: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#4CAF50" d="M9 16.17L4.83 12l-1.42 1.41L9 19 21 7l-1.41-1.41L9 16.17z"/></svg>`,
	},
	{
		ID:     "cross_red",
		Name:   "X Vermelho",
		Kind:   AssetSticker,
		Markup: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#F44336" d="M19 6.41L17.59 5 12 10.59 6.41 5 5 6.41 10.59 12 5 17.59 6.41 19 12 13.41 17.59 19 17.59 13.41 12 19 6.41z"/></svg>`,
	},
	{
		ID:     "warning_sign",
		Name:   "Sinal de Alerta",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><path d="M50 0 L100 100 H 0 Z" fill="yellow"/><text x="50" y="70" font-family="Anton, sans-serif" font-size="60" fill="black" text-anchor="middle">!</text></svg>`,
	},
	{
		ID:     "money_flying",
		Name:   "Dinheiro Voando",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 80" xmlns="http://www.w3.org/2000/svg"><g transform="rotate(-15 50 40)"><rect x="10" y="10" width="50" height="25" fill="#4CAF50" stroke="black" stroke-width="1"/><circle cx="35" cy="22.5" r="5" fill="#2E7D32"/><text x="55" y="28" font-size="15" fill="black">$</text></g><g transform="rotate(20 50 40) translate(20, 20)"><rect x="10" y="10" width="50" height="25" fill="#4CAF50" stroke="black" stroke-width="1"/><circle cx="35" cy="22.5" r="5" fill="#2E7D32"/><text x="55" y="28" font-size="15" fill="black">$</text></g></svg>`,
	},
	{
		ID:     "glitch_overlay",
		Name:   "Efeito Glitch",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><g fill="none" stroke-width="3"><path d="M0 20 H 100" stroke="cyan" transform="translate(5, 0)"/><path d="M0 50 H 100" stroke="red" transform="translate(-5, 0)"/><path d="M0 80 H 100" stroke="white" transform="translate(3, 0)"/></g></svg>`,
	},
	{
		ID:     "question_mark_bubble",
		Name:   "Balão de Dúvida",
		Kind:   AssetSticker,
		Markup: `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><circle cx="50" cy="50" r="40" fill="white" stroke="black" stroke-width="3" /><text x="50" y="68" font-family="Anton, sans-serif" font-size="60" fill="black" text-anchor="middle">?</text></svg>`,
	},
}
